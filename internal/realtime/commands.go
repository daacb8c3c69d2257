// Package realtime dispatches fire-and-forget commands to TV displays
// over MQTT. Delivery is at-most-once: success only means the broker
// accepted the publish, never that a display processed it.
package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/workflow"
)

// Command is a remote-control instruction a display understands.
type Command string

const (
	CommandHardReload Command = "hard_reload"
	CommandSoftReload Command = "soft_reload"
	CommandClearCache Command = "clear_cache"
)

func (c Command) Valid() bool {
	switch c {
	case CommandHardReload, CommandSoftReload, CommandClearCache:
		return true
	}
	return false
}

// CommandPayload is the wire shape published on a display's command topic.
type CommandPayload struct {
	ID        string                 `json:"id"`
	Command   Command                `json:"command"`
	Timestamp string                 `json:"timestamp"`
	Source    string                 `json:"source"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// dispatchTimeout bounds how long we wait for the broker to take a publish.
const dispatchTimeout = 5 * time.Second

var client mqtt.Client

var connectHandler mqtt.OnConnectHandler = func(c mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(c mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// InitMQTT connects the hub's publisher client. Displays subscribe to
// their own topic; the hub only ever publishes.
func InitMQTT(brokerURL, clientID string) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client = mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(dispatchTimeout) {
		return workflow.ErrCommandTimeout
	}
	if err := token.Error(); err != nil {
		return &workflow.TransportError{Err: err}
	}
	return nil
}

// CleanupMQTT disconnects the publisher client.
func CleanupMQTT() {
	if client != nil {
		client.Disconnect(250)
		log.Info().Msg("MQTT client disconnected")
	}
}

// CommandTopic is the per-display channel commands are published on.
func CommandTopic(displayID int) string {
	return fmt.Sprintf("displays/%d/commands", displayID)
}

// BuildPayload stamps a command with a fresh message ID and timestamp.
func BuildPayload(command Command, metadata map[string]interface{}) CommandPayload {
	return CommandPayload{
		ID:        uuid.NewString(),
		Command:   command,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    "hub_app",
		Metadata:  metadata,
	}
}

// SendCommand publishes a command to one display. QoS 0: no retry, no
// acknowledgment; callers re-invoke explicitly if they want another shot.
func SendCommand(displayID int, command Command, metadata map[string]interface{}) (CommandPayload, error) {
	if !command.Valid() {
		return CommandPayload{}, &workflow.ValidationError{Field: "command", Reason: "unknown command"}
	}
	if client == nil || !client.IsConnected() {
		return CommandPayload{}, &workflow.TransportError{Err: fmt.Errorf("MQTT client not connected")}
	}

	payload := BuildPayload(command, metadata)
	body, err := json.Marshal(payload)
	if err != nil {
		return CommandPayload{}, err
	}

	token := client.Publish(CommandTopic(displayID), 0, false, body)
	if !token.WaitTimeout(dispatchTimeout) {
		return CommandPayload{}, workflow.ErrCommandTimeout
	}
	if err := token.Error(); err != nil {
		log.Error().Err(err).Int("display_id", displayID).Str("command", string(command)).Msg("command publish failed")
		return CommandPayload{}, &workflow.TransportError{Err: err}
	}

	log.Info().Int("display_id", displayID).Str("command", string(command)).Str("message_id", payload.ID).Msg("command dispatched")
	return payload, nil
}
