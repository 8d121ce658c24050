package ws

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMessageRoundTrip(t *testing.T) {
	raw := []byte(`{"type":"click","payload":{"label":"e2"}}`)
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != MessageTypeClick {
		t.Fatalf("type = %q", msg.Type)
	}
	var click ClickPayload
	if err := json.Unmarshal(msg.Payload, &click); err != nil {
		t.Fatal(err)
	}
	if click.Label != "e2" {
		t.Fatalf("label = %q", click.Label)
	}
}

func TestErrorMessage(t *testing.T) {
	data, err := json.Marshal(ErrorMessage(`unknown message type: "draw"`))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("error message is not valid JSON: %v", err)
	}
	want := map[string]interface{}{
		"type":    "error",
		"payload": map[string]interface{}{"error": `unknown message type: "draw"`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
