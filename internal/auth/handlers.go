package auth

import (
	"net/http"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"
	"github.com/pulseops/pulse/internal/logx"
	"github.com/pulseops/pulse/internal/metrics"
	"github.com/pulseops/pulse/misc"
)

// VerifyUser decodes the bearer token and stashes the claims on the
// context; every authenticated route runs through here.
func (a *Auth) VerifyUser(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		misc.AbortWithErr(c, http.StatusUnauthorized, ErrMissingAuth)
		return
	}
	claims, err := a.ParseToken(BearerToken(header))
	if err != nil {
		misc.AbortWithErr(c, http.StatusUnauthorized, ErrUnauthorized)
		return
	}
	c.Set(gin.AuthUserKey, claims)
}

// CheckScopes returns a gin handler that checks the caller's role against
// the provided ScopeMap
func (a *Auth) CheckScopes(sm ScopeMap) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cl := GetCtxClaims(c); cl != nil && sm.HasAccess(cl.Role, c.Request.Method) {
			return
		}
		misc.AbortWithErr(c, http.StatusUnauthorized, ErrUnauthorized)
	}
}

func (a *Auth) SignupHandler(c *gin.Context) {
	var uwp SignupUser
	if err := misc.BindJSON(c, &uwp); err != nil {
		misc.AbortWithErr(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if uwp.Type == "" {
		uwp.Type = InfluencerScope
	}
	if len(uwp.Password) < 8 {
		misc.AbortWithErr(c, http.StatusBadRequest, ErrShortPass)
		return
	}
	if err := a.db.Update(func(tx *bolt.Tx) error {
		return a.CreateUserTx(tx, &uwp.User, uwp.Password)
	}); err != nil {
		misc.AbortWithErr(c, http.StatusBadRequest, err)
		return
	}

	metrics.SignupsTotal.Inc()
	logx.L().Infow("account created", "id", uwp.ID, "role", uwp.Type)
	c.JSON(http.StatusOK, misc.StatusOK(uwp.ID, "User registered successfully!"))
}

func (a *Auth) SignInHandler(c *gin.Context) {
	var li struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := misc.BindJSON(c, &li); err != nil {
		misc.AbortWithErr(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	u, tok, err := a.SignIn(li.Email, li.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		misc.AbortWithErr(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, misc.StatusData(gin.H{
		"token": tok,
		"role":  u.Type,
	}, "Login successful!"))
}

// MeHandler echoes the identity decoded from the presented token.
func (a *Auth) MeHandler(c *gin.Context) {
	cl := GetCtxClaims(c)
	if cl == nil {
		misc.AbortWithErr(c, http.StatusUnauthorized, ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, misc.StatusData(gin.H{
		"id":    cl.ID,
		"name":  cl.Name,
		"role":  cl.Role,
		"email": cl.Email,
	}, ""))
}
