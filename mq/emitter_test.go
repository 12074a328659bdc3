package mq

import (
	"encoding/json"
	"testing"

	"github.com/Roei786/Bridal-salon-sub000/models"
)

func TestEventCarriesName(t *testing.T) {
	data, err := json.Marshal(Event{
		Name: "bride-created",
		Index: models.Index{
			EntityType: "bride",
			EntityId:   "b1",
			Method:     "POST",
		},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Event
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != "bride-created" {
		t.Errorf("event name lost on the wire: %+v", got)
	}
	if got.EntityType != "bride" || got.EntityId != "b1" {
		t.Errorf("entity fields lost on the wire: %+v", got)
	}
}
