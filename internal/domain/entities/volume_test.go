package entities

import "testing"

func TestVolumeRecord_Totals(t *testing.T) {
	rec := VolumeRecord{
		OriginalQuantity: 10,
		Reservations: []Reservation{
			{CustomerSlug: "alice", Quantity: 6},
			{CustomerSlug: "bob", Quantity: 2.5},
		},
	}

	if got := rec.TotalReserved(); got != 8.5 {
		t.Fatalf("expected 8.5 reserved, got %v", got)
	}
	if got := rec.Remaining(); got != 1.5 {
		t.Fatalf("expected 1.5 remaining, got %v", got)
	}
}

func TestVolumeLedger_Clone(t *testing.T) {
	original := VolumeLedger{
		"42": {OriginalQuantity: 10, Reservations: []Reservation{{CustomerSlug: "alice", Quantity: 6}}},
	}

	clone := original.Clone()
	clone["42"].Reservations[0].Quantity = 99

	if original["42"].Reservations[0].Quantity != 6 {
		t.Fatalf("clone shares backing slice with the original")
	}

	if VolumeLedger(nil).Clone() != nil {
		t.Fatalf("nil ledger must clone to nil")
	}
}

func TestOrder_LocalDemands(t *testing.T) {
	order := Order{
		Items: map[string]float64{
			"42": 3,
			"7":  0,
			"9":  -1,
		},
		NonLocalItems: map[string]float64{"olive-oil": 2},
	}

	demands := order.LocalDemands()
	if len(demands) != 1 || demands["42"] != 3 {
		t.Fatalf("unexpected demands: %+v", demands)
	}
}
