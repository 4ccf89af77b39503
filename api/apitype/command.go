package apitype

// Command is the payload sent to a topic
type Command interface{}
