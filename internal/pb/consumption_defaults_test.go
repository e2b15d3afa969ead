package pb

import (
	"testing"

	"google.golang.org/protobuf/encoding/protojson"
)

func TestConsumptionRequestDefaultsToZero(t *testing.T) {
	msg := &ConsumptionRequest{}

	if msg.GetCurrentBufferAmount() != 0 {
		t.Fatalf("expected default current_buffer_amount to be 0")
	}
	if msg.GetBufferLimit() != 0 {
		t.Fatalf("expected default buffer_limit to be 0")
	}

	marshaled, err := protojson.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var roundTrip ConsumptionRequest
	if err := protojson.Unmarshal(marshaled, &roundTrip); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if roundTrip.GetBufferLimit() != 0 {
		t.Fatalf("expected buffer_limit to remain 0 after round-trip")
	}
}

func TestResourceProductionPayloadRoundTrip(t *testing.T) {
	init := &ResourceProduction{
		Payload: &ResourceProduction_InitInfo{
			InitInfo: &ResourceProductionInitInfo{ResourceId: "iron"},
		},
	}

	marshaled, err := protojson.Marshal(init)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var roundTrip ResourceProduction
	if err := protojson.Unmarshal(marshaled, &roundTrip); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if roundTrip.GetInitInfo().GetResourceId() != "iron" {
		t.Fatalf("expected init_info resource_id to survive round-trip, got %q", roundTrip.GetInitInfo().GetResourceId())
	}

	amount := &ResourceProduction{Payload: &ResourceProduction_Amount{Amount: 42}}
	if amount.GetAmount() != 42 {
		t.Fatalf("expected amount accessor to return 42, got %d", amount.GetAmount())
	}
	if amount.GetInitInfo() != nil {
		t.Fatalf("expected init_info accessor to be nil for amount payload")
	}
}
