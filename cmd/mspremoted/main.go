package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	fx "github.com/henkwiedig/msposd-remote/pkg/framework"
	"github.com/henkwiedig/msposd-remote/pkg/gpio"
	"github.com/henkwiedig/msposd-remote/pkg/input"
	"github.com/henkwiedig/msposd-remote/pkg/mqtt"
	"github.com/henkwiedig/msposd-remote/pkg/remote"
	"github.com/henkwiedig/msposd-remote/pkg/transport"
)

func init() {
	remote.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()
	if err := run(remote.NewConfig()); err != nil {
		glog.Exitf("fatal: %v", err)
	}
}

func run(conf *remote.Config) error {
	rcCmd, err := conf.RCCommandByte()
	if err != nil {
		return err
	}

	sender, err := transport.DialUDP(conf.Target)
	if err != nil {
		return err
	}
	// the session releases every resource when the loop ends; the
	// defers only guard exits before the session starts, all Close
	// implementations tolerate the double close
	defer sender.Close()
	glog.Infof("sending MSP frames to %s", sender.Addr())
	closers := []io.Closer{sender}

	var sources []input.Source

	pins, mapping, err := conf.PinMapping()
	if err != nil {
		return err
	}
	if len(pins) > 0 {
		reader, err := gpio.Open(pins)
		if err != nil {
			return err
		}
		defer reader.Close()
		closers = append(closers, reader)
		sources = append(sources, input.NewPinSource(reader, mapping))
	}

	sources = append(sources, input.NewLineSource(os.Stdin))

	if conf.MQTTBrokerURL != "" {
		queue, err := mqtt.NewQueueFromURL(conf.MQTTBrokerURL)
		if err != nil {
			return err
		}
		if err = queue.Connect(); err != nil {
			return err
		}
		defer queue.Close()
		closers = append(closers, queue)
		src, err := input.NewMQTTSource(queue, conf.MQTTTopic)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	seq := remote.NewSequencer(sender, remote.DefaultKeymap(), rcCmd)
	loop := fx.NewLoop()
	loop.Interval = conf.Interval
	loop.Add(remote.NewController(seq, sources...))

	fmt.Println("Control the MSP sender using WASDMX keys or GPIO buttons.")
	fmt.Println("Enter 'w', 'a', 's', 'd', 'm', 'x' or '0' to control, 'q' to quit.")
	fmt.Println("Waiting for first input to initialize...")

	runner := fx.NewRunner().HandleSignals()
	runner.Go(remote.NewSession(loop, closers...))
	return runner.Wait()
}
