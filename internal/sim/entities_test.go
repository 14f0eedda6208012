package sim

import "testing"

type blip struct {
	y    float64
	life int
}

func TestEntitiesUpdateRemovesSameFrame(t *testing.T) {
	var reg Entities[blip]
	for i := 0; i < 5; i++ {
		reg.Spawn(blip{y: float64(i * 100)})
	}

	// Everything past y=250 leaves the viewport this frame.
	removed := reg.Update(func(b *blip) bool {
		b.y += 10
		return b.y < 250
	})

	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if reg.Len() != 3 {
		t.Fatalf("len = %d, want 3", reg.Len())
	}
	for _, b := range reg.Items() {
		if b.y >= 250 {
			t.Errorf("entity at y=%v survived its lifetime condition", b.y)
		}
	}
}

func TestEntitiesLifetimeBound(t *testing.T) {
	var reg Entities[blip]
	reg.Spawn(blip{life: 3})

	frames := 0
	for reg.Len() > 0 {
		frames++
		reg.Update(func(b *blip) bool {
			b.life--
			return b.life > 0
		})
		if frames > 10 {
			t.Fatal("entity outlived its lifetime")
		}
	}
	if frames != 3 {
		t.Errorf("entity lived %d frames, want 3", frames)
	}
}

func TestEntitiesClear(t *testing.T) {
	var reg Entities[blip]
	reg.Spawn(blip{})
	reg.Spawn(blip{})
	reg.Clear()
	if reg.Len() != 0 {
		t.Errorf("len after Clear = %d", reg.Len())
	}
	reg.Each(func(*blip) { t.Error("Each visited a cleared entity") })
}
