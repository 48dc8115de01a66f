package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func TestCreateAndVerifyToken(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "test-secret"}

	token, err := j.CreateToken(42)
	Expect(err).To(BeNil())
	Expect(token).ToNot(BeEmpty())

	claims, err := j.VerifyToken(token)
	Expect(err).To(BeNil())
	Expect(claims["user_id"]).To(Equal(float64(42)))
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "test-secret"}
	token, _ := j.CreateToken(42)

	other := JWT{Secret: "another-secret"}
	_, err := other.VerifyToken(token)

	Expect(err).To(HaveOccurred())
}

func TestVerifyToken_Garbage(t *testing.T) {
	RegisterTestingT(t)

	j := JWT{Secret: "test-secret"}
	_, err := j.VerifyToken("not-a-token")

	Expect(err).To(HaveOccurred())
}

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected", GinJwtMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": c.GetInt("x-user-id")})
	})

	return router
}

func TestGinJwtMiddleware_ValidToken(t *testing.T) {
	RegisterTestingT(t)
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateJwtTokenForUser(7)
	Expect(err).To(BeNil())

	router := setupProtectedRouter()

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	Expect(w.Code).To(Equal(200))
	Expect(w.Body.String()).To(ContainSubstring(`"user_id":7`))
}

func TestGinJwtMiddleware_MissingHeader(t *testing.T) {
	RegisterTestingT(t)

	router := setupProtectedRouter()

	req, _ := http.NewRequest("GET", "/protected", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	Expect(w.Code).To(Equal(http.StatusUnauthorized))
}

func TestGinJwtMiddleware_BadFormat(t *testing.T) {
	RegisterTestingT(t)

	router := setupProtectedRouter()

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	Expect(w.Code).To(Equal(http.StatusUnauthorized))
}
