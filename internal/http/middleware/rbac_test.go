package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/marketauth/domain"
)

const testModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && regexMatch(r.act, p.act)
`

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	m, err := model.NewModelFromString(testModel)
	require.NoError(t, err)
	e, err := casbin.NewEnforcer(m)
	require.NoError(t, err)

	_, err = e.AddPolicy("role_admin", "/auth/register-admin", "POST")
	require.NoError(t, err)
	_, err = e.AddPolicy("role_superadmin", "/auth/register-admin", "POST")
	require.NoError(t, err)
	return e
}

func newRBACRouter(t *testing.T, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := NewCasbinMW(newTestEnforcer(t))

	r := gin.New()
	r.POST("/auth/register-admin", func(c *gin.Context) {
		if role != "" {
			c.Set("user_role", role)
		}
		c.Next()
	}, mw.Enforce(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func postRegisterAdmin(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/register-admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCasbinMW_AdminRolesAllowed(t *testing.T) {
	for _, role := range []string{domain.RoleAdmin, domain.RoleSuperAdmin} {
		t.Run(role, func(t *testing.T) {
			w := postRegisterAdmin(newRBACRouter(t, role))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestCasbinMW_NonAdminRolesDenied(t *testing.T) {
	for _, role := range []string{domain.RoleIndividual, domain.RoleLegalEntity, domain.RoleViewerAdmin} {
		t.Run(role, func(t *testing.T) {
			w := postRegisterAdmin(newRBACRouter(t, role))
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestCasbinMW_MissingRoleIsUnauthorized(t *testing.T) {
	w := postRegisterAdmin(newRBACRouter(t, ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
