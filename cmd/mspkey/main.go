package main

import (
	"flag"
	"log"
	"os"

	"github.com/henkwiedig/msposd-remote/pkg/input"
	"github.com/henkwiedig/msposd-remote/pkg/mqtt"
)

// mspkey publishes key symbols to the broker topic watched by a
// running mspremoted, so keys can be pressed from another host.

var (
	mqttURL = "mqtt://localhost:1883/"
	topic   = "keys"
)

func init() {
	if val := os.Getenv("MSPOSD_REMOTE_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&topic, "mqtt-topic", topic, "Topic carrying key symbols.")
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatalln("usage: mspkey [flags] KEY...")
	}
	keys := make([]input.Event, 0, flag.NArg())
	for _, arg := range flag.Args() {
		ev, ok := input.ParseEvent(arg)
		if !ok {
			log.Fatalf("unknown key %q", arg)
		}
		keys = append(keys, ev)
	}

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if err = q.Connect(); err != nil {
		log.Fatalln(err)
	}
	defer q.Close()

	for _, ev := range keys {
		if err = q.Pub(topic, []byte{byte(ev)}); err != nil {
			log.Fatalln(err)
		}
		log.Printf("pressed '%c'", ev)
	}
}
