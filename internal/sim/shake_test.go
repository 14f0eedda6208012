package sim

import "testing"

func TestShakeDecaysToZero(t *testing.T) {
	s := NewShake(1)
	s.Kick(20)

	frames := 0
	for s.Magnitude() > 0 {
		s.Update(1)
		frames++
		if frames > 100 {
			t.Fatal("shake never settled")
		}
	}
	if frames < 19 || frames > 21 {
		t.Errorf("settled after %d frames, want about 20", frames)
	}
}

func TestShakeWeakKickIgnored(t *testing.T) {
	s := NewShake(1)
	s.Kick(20)
	s.Update(5)
	s.Kick(5)
	if s.Magnitude() < 14 {
		t.Errorf("weak kick cut the shake to %v", s.Magnitude())
	}
	if dx, dy := s.Offset(nil); dx != 0 || dy != 0 {
		t.Error("offset without a source should be zero")
	}
}
