package server

import (
	"net/http"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"
	"github.com/pulseops/pulse/internal/auth"
	"github.com/pulseops/pulse/internal/common"
	"github.com/pulseops/pulse/internal/logx"
	"github.com/pulseops/pulse/internal/metrics"
	"github.com/pulseops/pulse/misc"
)

///////// Campaigns /////////

func postCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			cuser = auth.GetCtxClaims(c)
			cmp   common.Campaign
		)

		if err := misc.BindJSON(c, &cmp); err != nil {
			c.JSON(http.StatusBadRequest, misc.StatusErr("Error unmarshalling request body"))
			return
		}

		// the owner key is always the immutable account id from the
		// token, whatever the body says
		cmp.BrandOwner = cuser.ID
		cmp.Influencers = []*common.Membership{}

		if err := cmp.Check(); err != nil {
			c.JSON(http.StatusBadRequest, misc.StatusErr(err.Error()))
			return
		}

		if err := s.db.Update(func(tx *bolt.Tx) error {
			return createCampaignTx(tx, &cmp, s)
		}); err != nil {
			c.JSON(statusCode(err), misc.StatusErr(err.Error()))
			return
		}

		logx.L().Infow("campaign created", "id", cmp.ID, "brandOwner", cmp.BrandOwner)
		c.JSON(http.StatusOK, misc.StatusData(&cmp, "Campaign created successfully!"))
	}
}

func getAllCampaigns(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaigns := common.GetAllCampaigns(s.db, s.Cfg)
		c.JSON(http.StatusOK, misc.StatusData(campaigns, "Campaigns fetched successfully!"))
	}
}

func getCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cmp := common.GetCampaign(c.Params.ByName("id"), s.db, s.Cfg)
		if cmp == nil {
			c.JSON(http.StatusNotFound, misc.StatusErr(common.ErrCampaignNotFound.Error()))
			return
		}
		c.JSON(http.StatusOK, misc.StatusData(cmp, "Campaign fetched successfully!"))
	}
}

func getJoinedCampaigns(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cuser := auth.GetCtxClaims(c)

		joined := make([]*common.Campaign, 0, 16)
		for _, cmp := range common.GetAllCampaigns(s.db, s.Cfg) {
			if cmp.Membership(cuser.ID) != nil {
				joined = append(joined, cmp)
			}
		}
		c.JSON(http.StatusOK, misc.StatusData(joined, "Joined campaigns fetched successfully."))
	}
}

func getOwnCampaigns(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		cuser := auth.GetCtxClaims(c)

		owned := make([]*common.Campaign, 0, 16)
		for _, cmp := range common.GetAllCampaigns(s.db, s.Cfg) {
			if cmp.BrandOwner == cuser.ID {
				owned = append(owned, cmp)
			}
		}
		c.JSON(http.StatusOK, misc.StatusData(owned, "Own campaigns fetched successfully."))
	}
}

///////// Membership & posts /////////

func joinCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			cuser = auth.GetCtxClaims(c)
			cid   = c.Params.ByName("id")
		)

		// the membership check and the append share one write
		// transaction, two concurrent joins cannot both pass it
		if err := s.db.Update(func(tx *bolt.Tx) error {
			cmp := common.GetCampaignTx(tx, s.Cfg, cid)
			if cmp == nil {
				return common.ErrCampaignNotFound
			}
			if _, err := cmp.Join(cuser.ID, cuser.Name); err != nil {
				return err
			}
			return saveCampaign(tx, cmp, s)
		}); err != nil {
			c.JSON(statusCode(err), misc.StatusErr(err.Error()))
			return
		}

		c.JSON(http.StatusOK, misc.StatusOK(cid, "Successfully joined the campaign."))
	}
}

func submitPost(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			cuser = auth.GetCtxClaims(c)
			cid   = c.Params.ByName("id")

			req struct {
				Link string `json:"link"`
			}
			post *common.Post
		)

		if err := misc.BindJSON(c, &req); err != nil || req.Link == "" {
			c.JSON(http.StatusBadRequest, misc.StatusErr(common.ErrMissingLink.Error()))
			return
		}

		if err := s.db.Update(func(tx *bolt.Tx) error {
			cmp := common.GetCampaignTx(tx, s.Cfg, cid)
			if cmp == nil {
				return common.ErrCampaignNotFound
			}
			m := cmp.Membership(cuser.ID)
			if m == nil {
				return common.ErrNotJoined
			}
			post = m.AddPost(req.Link)
			return saveCampaign(tx, cmp, s)
		}); err != nil {
			c.JSON(statusCode(err), misc.StatusErr(err.Error()))
			return
		}

		c.JSON(http.StatusOK, misc.StatusOK(post.ID, "Post submitted successfully."))
	}
}

func reviewPost(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			cid = c.Params.ByName("id")

			req struct {
				InfluencerID string `json:"influencerId"`
				PostID       string `json:"postId"`
				Status       string `json:"status"`
			}
		)

		if err := misc.BindJSON(c, &req); err != nil || req.PostID == "" || req.Status == "" {
			c.JSON(http.StatusBadRequest, misc.StatusErr("Post ID and status are required"))
			return
		}

		if err := s.db.Update(func(tx *bolt.Tx) error {
			cmp := common.GetCampaignTx(tx, s.Cfg, cid)
			if cmp == nil {
				return common.ErrCampaignNotFound
			}
			m := cmp.Membership(req.InfluencerID)
			if m == nil {
				return common.ErrInfluencerNotFound
			}
			p := m.Post(req.PostID)
			if p == nil {
				return common.ErrPostNotFound
			}
			if err := p.Review(req.Status); err != nil {
				return err
			}
			return saveCampaign(tx, cmp, s)
		}); err != nil {
			c.JSON(statusCode(err), misc.StatusErr(err.Error()))
			return
		}

		metrics.PostsReviewedTotal.WithLabelValues(req.Status).Inc()
		c.JSON(http.StatusOK, misc.StatusOK(req.PostID, "Post "+req.Status+" successfully."))
	}
}

// updatePostStatus addresses a post by id alone and scans campaigns for
// it, the review semantics are identical to reviewPost.
func updatePostStatus(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			PostID string `json:"postId"`
			Status string `json:"status"`
		}

		if err := misc.BindJSON(c, &req); err != nil || req.PostID == "" || req.Status == "" {
			c.JSON(http.StatusBadRequest, misc.StatusErr("Post ID and status are required"))
			return
		}
		if !common.ValidReviewStatus(req.Status) {
			c.JSON(http.StatusBadRequest, misc.StatusErr(common.ErrBadStatus.Error()))
			return
		}

		if err := s.db.Update(func(tx *bolt.Tx) error {
			cmp, p := findPostTx(tx, s, req.PostID)
			if p == nil {
				return common.ErrPostNotFound
			}
			if err := p.Review(req.Status); err != nil {
				return err
			}
			return saveCampaign(tx, cmp, s)
		}); err != nil {
			c.JSON(statusCode(err), misc.StatusErr(err.Error()))
			return
		}

		metrics.PostsReviewedTotal.WithLabelValues(req.Status).Inc()
		c.JSON(http.StatusOK, misc.StatusOK(req.PostID, "Post "+req.Status+" successfully."))
	}
}

func findPostTx(tx *bolt.Tx, s *Server, postID string) (*common.Campaign, *common.Post) {
	var (
		cmp  *common.Campaign
		post *common.Post
	)
	misc.GetBucket(tx, s.Cfg.Bucket.Campaign).ForEach(func(k, v []byte) error {
		if post != nil {
			return nil
		}
		cur := common.GetCampaignTx(tx, s.Cfg, string(k))
		if cur == nil {
			return nil
		}
		for _, m := range cur.Influencers {
			if p := m.Post(postID); p != nil {
				cmp, post = cur, p
				return nil
			}
		}
		return nil
	})
	return cmp, post
}
