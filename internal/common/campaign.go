package common

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pulseops/pulse/config"
	"github.com/pulseops/pulse/internal/logx"
	"github.com/pulseops/pulse/misc"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrNameTaken          = errors.New("campaign name already taken")
	ErrMissingName        = errors.New("please provide a campaign name")
	ErrMissingDeadline    = errors.New("please provide a deadline")
	ErrAlreadyJoined      = errors.New("you have already joined this campaign")
	ErrNotJoined          = errors.New("you have not joined this campaign")
	ErrInfluencerNotFound = errors.New("influencer not found in this campaign")
	ErrPostNotFound       = errors.New("post not found")
	ErrMissingLink        = errors.New("please provide a post link")
	ErrBadStatus          = errors.New("status must be accepted or rejected")
	ErrAlreadyReviewed    = errors.New("post already reviewed")
)

// Post is a submitted content link under a membership. The id is assigned
// by the storage layer at submit time and addresses the post for review.
type Post struct {
	ID     string `json:"id"`
	Link   string `json:"link"`
	Status string `json:"status"`
}

// Review moves a post out of pending exactly once.
func (p *Post) Review(status string) error {
	if !ValidReviewStatus(status) {
		return ErrBadStatus
	}
	if p.Status != StatusPending {
		return ErrAlreadyReviewed
	}
	p.Status = status
	return nil
}

func ValidReviewStatus(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

type Membership struct {
	InfluencerID string    `json:"influencerId"`
	Name         string    `json:"name"`
	JoiningDate  time.Time `json:"joiningDate"`

	// NumberOfPosts is denormalized and must always equal len(Posts).
	NumberOfPosts int     `json:"numberOfPosts"`
	Posts         []*Post `json:"posts"`
}

// AddPost appends a pending post and keeps the denormalized count in sync.
func (m *Membership) AddPost(link string) *Post {
	p := &Post{
		ID:     misc.PseudoUUID(),
		Link:   link,
		Status: StatusPending,
	}
	m.Posts = append(m.Posts, p)
	m.NumberOfPosts = len(m.Posts)
	return p
}

func (m *Membership) Post(postID string) *Post {
	for _, p := range m.Posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}

type Campaign struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// BrandOwner is the account id of the manager who created the
	// campaign, names are mutable and never used as the owner key.
	BrandOwner string `json:"brandOwner"`

	Image    string    `json:"image,omitempty"`
	Deadline time.Time `json:"deadline"`

	// Influencers keeps join order, one membership per influencer.
	Influencers []*Membership `json:"influencers"`
}

func (cmp *Campaign) Check() error {
	if strings.TrimSpace(cmp.Name) == "" {
		return ErrMissingName
	}
	if cmp.Deadline.IsZero() {
		return ErrMissingDeadline
	}
	return nil
}

func (cmp *Campaign) Membership(influencerID string) *Membership {
	for _, m := range cmp.Influencers {
		if m.InfluencerID == influencerID {
			return m
		}
	}
	return nil
}

// Join appends a membership for the influencer, it is a guarded append,
// not idempotent: a second call for the same influencer fails.
func (cmp *Campaign) Join(influencerID, name string) (*Membership, error) {
	if cmp.Membership(influencerID) != nil {
		return nil, ErrAlreadyJoined
	}
	m := &Membership{
		InfluencerID: influencerID,
		Name:         name,
		JoiningDate:  time.Now(),
		Posts:        []*Post{},
	}
	cmp.Influencers = append(cmp.Influencers, m)
	return m, nil
}

func GetCampaignTx(tx *bolt.Tx, cfg *config.Config, cid string) *Campaign {
	var cmp Campaign
	if misc.GetTxJson(tx, cfg.Bucket.Campaign, cid, &cmp) == nil && cmp.ID != "" {
		return &cmp
	}
	return nil
}

func GetCampaign(cid string, db *bolt.DB, cfg *config.Config) *Campaign {
	var cmp *Campaign
	db.View(func(tx *bolt.Tx) error {
		cmp = GetCampaignTx(tx, cfg, cid)
		return nil
	})
	return cmp
}

// GetAllCampaigns scans the campaign bucket; keys iterate
// byte-lexicographically, so listing order is by key bytes, not by
// creation order.
func GetAllCampaigns(db *bolt.DB, cfg *config.Config) []*Campaign {
	campaigns := make([]*Campaign, 0, 64)

	if err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(cfg.Bucket.Campaign)).ForEach(func(k, v []byte) (err error) {
			cmp := &Campaign{}
			if err := json.Unmarshal(v, cmp); err != nil {
				logx.L().Warnw("error when unmarshalling campaign", "value", string(v))
				return nil
			}
			campaigns = append(campaigns, cmp)
			return
		})
	}); err != nil {
		logx.L().Warnw("error getting all campaigns", "err", err)
	}
	return campaigns
}
