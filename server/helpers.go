package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/boltdb/bolt"
	"github.com/pulseops/pulse/internal/common"
	"github.com/pulseops/pulse/misc"
)

func saveCampaign(tx *bolt.Tx, cmp *common.Campaign, s *Server) error {
	var (
		b   []byte
		err error
	)

	if b, err = json.Marshal(cmp); err != nil {
		return err
	}
	return misc.PutBucketBytes(tx, s.Cfg.Bucket.Campaign, cmp.ID, b)
}

// createCampaignTx assigns an id and claims the campaign name, both writes
// land in the same transaction so a duplicate name can never slip through.
func createCampaignTx(tx *bolt.Tx, cmp *common.Campaign, s *Server) (err error) {
	nameKey := strings.ToLower(strings.TrimSpace(cmp.Name))
	names := misc.GetBucket(tx, s.Cfg.Bucket.CampaignName)
	if names.Get([]byte(nameKey)) != nil {
		return common.ErrNameTaken
	}
	if cmp.ID, err = misc.GetNextIndex(tx, s.Cfg.Bucket.Campaign); err != nil {
		return
	}
	if err = names.Put([]byte(nameKey), []byte(cmp.ID)); err != nil {
		return
	}
	return saveCampaign(tx, cmp, s)
}

// statusCode maps domain errors onto the HTTP taxonomy: absent entities
// are 404, named validation errors are 400, anything else is a storage
// fault and surfaces as 500.
func statusCode(err error) int {
	switch err {
	case common.ErrCampaignNotFound, common.ErrInfluencerNotFound,
		common.ErrNotJoined, common.ErrPostNotFound:
		return http.StatusNotFound
	case common.ErrNameTaken, common.ErrMissingName, common.ErrMissingDeadline,
		common.ErrAlreadyJoined, common.ErrMissingLink,
		common.ErrBadStatus, common.ErrAlreadyReviewed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
