package main

import (
	"flag"
	"log"
	"os"

	fx "github.com/betz-engineering/uiboard.go/pkg/framework"
	"github.com/betz-engineering/uiboard.go/pkg/host"
	"github.com/betz-engineering/uiboard.go/pkg/host/monitor"
	"github.com/betz-engineering/uiboard.go/pkg/mqtt"
)

var (
	configPath string
	brokerURL  string
)

func init() {
	if val := os.Getenv("UIBOARD_MQTT_URL"); val != "" {
		brokerURL = val
	}
	flag.StringVar(&configPath, "config", configPath, "Config file (TOML).")
	flag.StringVar(&brokerURL, "mqtt", brokerURL, "MQTT broker URL, overrides config.")
}

func main() {
	flag.Parse()

	conf, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if brokerURL != "" {
		conf.BrokerURL = brokerURL
	}

	board, err := host.Open()
	if err != nil {
		log.Fatalln(err)
	}
	defer board.Close()

	queue, err := mqtt.NewQueueFromURL(conf.BrokerURL)
	if err != nil {
		log.Fatalln(err)
	}
	defer queue.Close()
	if token := queue.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}

	loop := fx.NewLoop()
	loop.Add(monitor.NewController(board, queue, conf.Topic, conf.PollInterval()))

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("loop", loop))
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
