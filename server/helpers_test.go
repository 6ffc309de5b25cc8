package server

import (
	"errors"
	"testing"

	"github.com/pulseops/pulse/internal/common"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err error
		ex  int
	}{
		{common.ErrCampaignNotFound, 404},
		{common.ErrInfluencerNotFound, 404},
		{common.ErrNotJoined, 404},
		{common.ErrPostNotFound, 404},
		{common.ErrNameTaken, 400},
		{common.ErrMissingName, 400},
		{common.ErrMissingDeadline, 400},
		{common.ErrAlreadyJoined, 400},
		{common.ErrMissingLink, 400},
		{common.ErrBadStatus, 400},
		{common.ErrAlreadyReviewed, 400},
		// anything unrecognized is a storage fault, not the caller's doing
		{errors.New("marshal failed"), 500},
	}
	for _, ts := range tests {
		if v := statusCode(ts.err); v != ts.ex {
			t.Errorf("%v: wanted %d, got %d", ts.err, ts.ex, v)
		}
	}
}
