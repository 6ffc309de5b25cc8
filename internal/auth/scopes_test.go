package auth

import "testing"

func TestScopes(t *testing.T) {
	var (
		sm = ScopeMap{
			ManagerScope:    {Get: true, Post: true, Put: true, Patch: true},
			InfluencerScope: {Post: true},
			AllScopes:       {Get: true},
		}

		tests = []struct {
			s  Scope
			m  string
			ex bool
		}{
			{ManagerScope, "GET", true},
			{ManagerScope, "PUT", true},
			{ManagerScope, "PATCH", true},
			{ManagerScope, "DELETE", false},
			{InfluencerScope, "POST", true},
			{InfluencerScope, "PUT", false},
			{InfluencerScope, "GET", true}, // because it's inherited from AllScopes
			{InvalidScope, "GET", true},    // catch-all applies to any scope
			{InvalidScope, "POST", false},
		}
	)

	for _, ts := range tests {
		if v := sm.HasAccess(ts.s, ts.m); v != ts.ex {
			t.Errorf("wanted %+v, got %v", ts, v)
		}
	}
}

func TestScopeValid(t *testing.T) {
	tests := []struct {
		s  Scope
		ex bool
	}{
		{InfluencerScope, true},
		{ManagerScope, true},
		{InvalidScope, false},
		{Scope("admin"), false},
	}
	for _, ts := range tests {
		if v := ts.s.Valid(); v != ts.ex {
			t.Errorf("wanted %+v, got %v", ts, v)
		}
	}
}

func TestNilScopeMap(t *testing.T) {
	var sm ScopeMap
	if sm.HasAccess(ManagerScope, "GET") {
		t.Error("nil scope map should deny everything")
	}
}
