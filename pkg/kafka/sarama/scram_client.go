package sarama

import (
	"crypto/sha512"

	"github.com/xdg-go/scram"
)

var sHA512 scram.HashGeneratorFcn = sha512.New

// xDGSCRAMClient adapts xdg-go/scram to sarama.SCRAMClient.
type xDGSCRAMClient struct {
	*scram.Client
	*scram.ClientConversation
	scram.HashGeneratorFcn
}

func (x *xDGSCRAMClient) Begin(userName, password, authzID string) error {
	client, err := x.HashGeneratorFcn.NewClient(userName, password, authzID)
	if err != nil {
		return err
	}
	x.Client = client
	x.ClientConversation = client.NewConversation()
	return nil
}

func (x *xDGSCRAMClient) Step(challenge string) (string, error) {
	return x.ClientConversation.Step(challenge)
}

func (x *xDGSCRAMClient) Done() bool {
	return x.ClientConversation.Done()
}
