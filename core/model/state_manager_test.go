package model

import "testing"

// TestStateManager_Lifecycle tests the fitted flag and dimension bookkeeping
func TestStateManager_Lifecycle(t *testing.T) {
	s := NewStateManager()

	if s.IsFitted() {
		t.Error("New state manager should not be fitted")
	}

	s.SetDimensions(4, 100)
	s.SetFitted()

	if !s.IsFitted() {
		t.Error("State manager should be fitted after SetFitted")
	}

	nFeatures, nSamples := s.GetDimensions()
	if nFeatures != 4 || nSamples != 100 {
		t.Errorf("Expected dimensions (4, 100), got (%d, %d)", nFeatures, nSamples)
	}
}

// TestStateManager_Reset tests that Reset clears all state
func TestStateManager_Reset(t *testing.T) {
	s := NewStateManager()
	s.SetDimensions(2, 10)
	s.SetFitted()

	s.Reset()

	if s.IsFitted() {
		t.Error("State manager should not be fitted after Reset")
	}
	nFeatures, nSamples := s.GetDimensions()
	if nFeatures != 0 || nSamples != 0 {
		t.Errorf("Expected dimensions (0, 0) after Reset, got (%d, %d)", nFeatures, nSamples)
	}
}

// TestStateManager_RequireFitted tests the not-fitted guard
func TestStateManager_RequireFitted(t *testing.T) {
	s := NewStateManager()

	if err := s.RequireFitted(); err == nil {
		t.Fatal("Expected error from RequireFitted before fitting, got nil")
	}

	s.SetFitted()
	if err := s.RequireFitted(); err != nil {
		t.Errorf("RequireFitted after SetFitted should return nil, got %v", err)
	}
}
