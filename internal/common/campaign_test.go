package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignCheck(t *testing.T) {
	deadline := time.Now().Add(30 * 24 * time.Hour)

	tests := []struct {
		name string
		cmp  Campaign
		ex   error
	}{
		{"ok", Campaign{Name: "Summer Sale", Deadline: deadline}, nil},
		{"no name", Campaign{Deadline: deadline}, ErrMissingName},
		{"blank name", Campaign{Name: "   ", Deadline: deadline}, ErrMissingName},
		{"no deadline", Campaign{Name: "Summer Sale"}, ErrMissingDeadline},
	}
	for _, ts := range tests {
		if err := ts.cmp.Check(); err != ts.ex {
			t.Errorf("%s: wanted %v, got %v", ts.name, ts.ex, err)
		}
	}
}

func TestJoinIsGuarded(t *testing.T) {
	cmp := &Campaign{Name: "Summer Sale"}

	m, err := cmp.Join("42", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "42", m.InfluencerID)
	assert.Zero(t, m.NumberOfPosts)
	assert.NotNil(t, m.Posts)

	// second join is a failure, not a no-op success
	_, err = cmp.Join("42", "Alice")
	assert.Equal(t, ErrAlreadyJoined, err)
	assert.Len(t, cmp.Influencers, 1)

	_, err = cmp.Join("43", "Bob")
	require.NoError(t, err)
	assert.Len(t, cmp.Influencers, 2)

	// join order is preserved
	assert.Equal(t, "42", cmp.Influencers[0].InfluencerID)
	assert.Equal(t, "43", cmp.Influencers[1].InfluencerID)
}

func TestAddPostKeepsCountInSync(t *testing.T) {
	m := &Membership{InfluencerID: "42", Name: "Alice"}

	for i := 1; i <= 5; i++ {
		p := m.AddPost("http://example.com/post")
		assert.Equal(t, StatusPending, p.Status)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, i, m.NumberOfPosts)
		assert.Equal(t, len(m.Posts), m.NumberOfPosts)
	}

	seen := map[string]bool{}
	for _, p := range m.Posts {
		assert.False(t, seen[p.ID], "post ids must be unique")
		seen[p.ID] = true
	}
}

func TestReviewTransitionsOnce(t *testing.T) {
	p := &Post{ID: "p1", Link: "http://l", Status: StatusPending}

	assert.Equal(t, ErrBadStatus, p.Review("pending"))
	assert.Equal(t, ErrBadStatus, p.Review("bogus"))
	assert.Equal(t, StatusPending, p.Status)

	require.NoError(t, p.Review(StatusAccepted))
	assert.Equal(t, StatusAccepted, p.Status)

	// terminal, no rewrites
	assert.Equal(t, ErrAlreadyReviewed, p.Review(StatusRejected))
	assert.Equal(t, StatusAccepted, p.Status)
}

func TestMembershipPostLookup(t *testing.T) {
	m := &Membership{InfluencerID: "42"}
	p1 := m.AddPost("http://one")
	p2 := m.AddPost("http://two")

	assert.Equal(t, p1, m.Post(p1.ID))
	assert.Equal(t, p2, m.Post(p2.ID))
	assert.Nil(t, m.Post("missing"))
}
