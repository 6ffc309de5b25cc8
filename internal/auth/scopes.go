package auth

type Scope string

const (
	AllScopes Scope = `*` // this is a special catch-all case for matching

	InvalidScope    Scope = ""
	InfluencerScope Scope = `influencer`
	ManagerScope    Scope = `manager`
)

func (s Scope) Valid() bool {
	switch s {
	case InfluencerScope, ManagerScope:
		return true
	}
	return false
}

type ScopeMap map[Scope]struct{ Get, Put, Post, Patch, Delete bool }

func (sm ScopeMap) HasAccess(scope Scope, method string) bool {
	if sm == nil {
		return false
	}

	var v bool
	if m, ok := sm[scope]; ok {
		switch method {
		case "HEAD", "GET":
			v = m.Get
		case "PUT":
			v = m.Put
		case "POST":
			v = m.Post
		case "PATCH":
			v = m.Patch
		case "DELETE":
			v = m.Delete
		}
	}
	if !v && scope != AllScopes {
		v = sm.HasAccess(AllScopes, method)
	}
	return v
}
