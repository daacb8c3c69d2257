package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-suite/hub/internal/workflow"
)

func TestCommandValid(t *testing.T) {
	assert.True(t, CommandHardReload.Valid())
	assert.True(t, CommandSoftReload.Valid())
	assert.True(t, CommandClearCache.Valid())
	assert.False(t, Command("reboot").Valid())
	assert.False(t, Command("").Valid())
}

func TestCommandTopic(t *testing.T) {
	assert.Equal(t, "displays/42/commands", CommandTopic(42))
}

func TestBuildPayload(t *testing.T) {
	p := BuildPayload(CommandHardReload, map[string]interface{}{"requested_by": 7})

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, CommandHardReload, p.Command)
	assert.Equal(t, "hub_app", p.Source)
	assert.Equal(t, 7, p.Metadata["requested_by"])

	ts, err := time.Parse(time.RFC3339, p.Timestamp)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)

	// each payload gets its own message id
	assert.NotEqual(t, p.ID, BuildPayload(CommandHardReload, nil).ID)
}

func TestPayloadWireShape(t *testing.T) {
	p := BuildPayload(CommandSoftReload, nil)
	body, err := json.Marshal(p)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "soft_reload", decoded["command"])
	assert.Equal(t, "hub_app", decoded["source"])
	assert.NotContains(t, decoded, "metadata", "empty metadata is omitted")
}

func TestSendCommandRejectsUnknownCommand(t *testing.T) {
	_, err := SendCommand(1, Command("reboot"), nil)

	var vErr *workflow.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "command", vErr.Field)
}

func TestSendCommandWithoutClient(t *testing.T) {
	client = nil
	_, err := SendCommand(1, CommandHardReload, nil)

	var tErr *workflow.TransportError
	assert.ErrorAs(t, err, &tErr)
}
