package server

import (
	"os"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"
	"github.com/pulseops/pulse/config"
	"github.com/pulseops/pulse/internal/auth"
	"github.com/pulseops/pulse/misc"
)

type Server struct {
	Cfg  *config.Config
	r    *gin.Engine
	db   *bolt.DB
	auth *auth.Auth
}

func New(cfg *config.Config, r *gin.Engine) (*Server, error) {
	if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
		return nil, err
	}
	db, err := misc.OpenDB(cfg.DBPath, cfg.DBName)
	if err != nil {
		return nil, err
	}
	if err = misc.CreateBuckets(db, cfg.AllBuckets()); err != nil {
		return nil, err
	}

	srv := &Server{
		Cfg:  cfg,
		r:    r,
		db:   db,
		auth: auth.New(db, cfg),
	}
	srv.initializeRoutes(r)
	return srv, nil
}

func (srv *Server) initializeRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/user/signup", srv.auth.SignupHandler)
	api.POST("/user/login", srv.auth.SignInHandler)
	api.GET("/user/me", srv.auth.VerifyUser, srv.auth.MeHandler)

	var (
		verify  = srv.auth.VerifyUser
		infOnly = srv.auth.CheckScopes(auth.ScopeMap{
			auth.InfluencerScope: {Get: true, Post: true},
		})
		mgrOnly = srv.auth.CheckScopes(auth.ScopeMap{
			auth.ManagerScope: {Get: true, Post: true, Put: true, Patch: true},
		})
	)

	// listing and detail are public, mutations go through the token
	api.GET("/campaigns", getAllCampaigns(srv))
	api.GET("/campaigns/:id", getCampaign(srv))

	api.POST("/campaigns", verify, mgrOnly, postCampaign(srv))
	api.GET("/campaigns/joined", verify, infOnly, getJoinedCampaigns(srv))
	api.GET("/campaigns/owned", verify, mgrOnly, getOwnCampaigns(srv))
	api.POST("/campaigns/:id/join", verify, infOnly, joinCampaign(srv))
	api.POST("/campaigns/:id/post", verify, infOnly, submitPost(srv))
	api.PUT("/campaigns/:id/review", verify, mgrOnly, reviewPost(srv))
	api.PATCH("/campaigns/update-post-status", verify, mgrOnly, updatePostStatus(srv))
}

func (srv *Server) Run() error {
	return srv.r.Run(srv.Cfg.Host + ":" + srv.Cfg.Port)
}

func (srv *Server) Close() error {
	return srv.db.Close()
}
