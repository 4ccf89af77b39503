package event

import (
	"fmt"
	"github.com/Marat-Tanalin/integer-scaling/api"
	"github.com/Marat-Tanalin/integer-scaling/api/apitype"
	"github.com/Marat-Tanalin/integer-scaling/common/logger"
	messagebus "github.com/vardius/message-bus"
)

type Broker struct {
	bus    messagebus.MessageBus
	topics map[api.Topic]bool

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus:    messagebus.New(queueSize),
		topics: map[api.Topic]bool{},
	}
}

// Subscribe registers fn for the topic. fn must accept the published
// command, e.g. func(*api.CaseCheckedCommand).
func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe to ", topic, ": ", err)
	}
	s.topics[topic] = true
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

// Close stops delivery on every subscribed topic
func (s *Broker) Close() {
	for topic := range s.topics {
		s.bus.Close(string(topic))
	}
	s.topics = map[api.Topic]bool{}
}
