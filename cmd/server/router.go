package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"moviehub/internal/auth"
	"moviehub/internal/catalog"
	"moviehub/internal/config"
	"moviehub/internal/movietop"
	"moviehub/internal/session"
	"moviehub/internal/storage"
)

type server struct {
	cfg      config.Config
	catalog  *catalog.Store
	sessions *session.Registry
	images   *storage.Images
}

func newRouter(s *server) *gin.Engine {
	r := gin.Default()
	r.Use(corsAllowAll())
	r.SetHTMLTemplate(pages)
	r.Static("/static", s.cfg.StaticDir)

	r.GET("/", s.handleIndex)
	r.GET("/study", s.handleStudy)
	r.GET("/movietop/*name", s.handleMovieTop)

	r.GET("/movies/add-form", s.handleAddForm)
	r.POST("/movies/add", s.handleAddMovie)
	r.GET("/movies/:id", s.handleMovieByID)

	r.GET("/login-cookie-form", s.handleCookieLoginForm)
	r.POST("/login-cookie", s.handleCookieLogin)
	r.GET("/user-cookie", s.handleCookieProfile)

	r.GET("/login-jwt-form", s.handleJWTLoginForm)
	r.POST("/login-jwt", s.handleJWTLogin)
	r.GET("/user-jwt", s.handleJWTProfile)

	return r
}

// corsAllowAll opens the API to any origin. Dev-grade, same policy the
// browser clients of this server expect.
func corsAllowAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "*")
		c.Header("Access-Control-Allow-Headers", "*")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", nil)
}

func (s *server) handleStudy(c *gin.Context) {
	c.HTML(http.StatusOK, "study", nil)
}

func (s *server) handleMovieTop(c *gin.Context) {
	// Wildcard param keeps its leading slash; names may contain spaces.
	name := strings.ToLower(strings.TrimPrefix(c.Param("name"), "/"))

	if e, ok := movietop.Lookup(name); ok {
		c.JSON(http.StatusOK, e)
		return
	}
	// A miss is an answer, not a 404.
	c.JSON(http.StatusOK, gin.H{
		"error":         "Movie not found in top 10",
		"searched_name": name,
	})
}

func (s *server) handleAddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_form", nil)
}

func (s *server) handleAddMovie(c *gin.Context) {
	rating, err := strconv.ParseFloat(c.PostForm("rating"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Rating must be a number"})
		return
	}

	in := catalog.Input{
		Name:    c.PostForm("name"),
		Genre:   c.PostForm("genre"),
		Rating:  rating,
		Comment: c.PostForm("comment"),
	}
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read image"})
			return
		}
		defer src.Close()

		filename, err := s.images.Save(s.catalog.NextID(), file.Filename, src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to save image"})
			return
		}
		in.ImageFilename = filename
	}

	m, err := s.catalog.Add(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "movie_added", gin.H{"ID": m.ID})
}

func (s *server) handleMovieByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusOK, "movie_not_found", nil)
		return
	}

	m, ok := s.catalog.Get(id)
	if !ok {
		c.HTML(http.StatusOK, "movie_not_found", nil)
		return
	}

	c.HTML(http.StatusOK, "movie", gin.H{
		"Movie":    m,
		"ImageURL": imageURL(m),
	})
}

func imageURL(m catalog.Movie) string {
	if m.ImageFilename == "" {
		return ""
	}
	return "/static/images/" + m.ImageFilename
}

func (s *server) handleCookieLoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "cookie_login_form", nil)
}

func (s *server) handleCookieLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !auth.Authenticate(username, password) {
		c.HTML(http.StatusUnauthorized, "cookie_login_fail", nil)
		return
	}

	token, _ := s.sessions.Create()
	c.SetCookie("session_token", token, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)

	c.HTML(http.StatusOK, "cookie_login_ok", gin.H{
		"Username": username,
		"Token":    token,
	})
}

func (s *server) handleCookieProfile(c *gin.Context) {
	authType := "cookie"
	token, err := c.Cookie("session_token")
	if err != nil || token == "" {
		token = c.Query("session_token")
		authType = "cookie_url_param"
	}

	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Unauthorized",
			"reason":  "No session token provided",
		})
		return
	}

	expiry, ok := s.sessions.Verify(token)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Unauthorized",
			"reason":  "Invalid session token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Authorized",
		"profile": gin.H{
			"session_active":  true,
			"session_expires": expiry.Format(time.RFC3339),
			"auth_type":       authType,
		},
		"movies_count": s.catalog.Count(),
	})
}

func (s *server) handleJWTLoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "jwt_login_form", nil)
}

func (s *server) handleJWTLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username and password required"})
		return
	}
	if !auth.Authenticate(username, password) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}

	token, err := auth.Sign([]byte(s.cfg.JWTSecret), username, s.cfg.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "sign token failed"})
		return
	}

	c.HTML(http.StatusOK, "jwt_login_ok", gin.H{
		"Username": username,
		"Token":    token,
	})
}

func (s *server) handleJWTProfile(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if tok := c.Query("token"); tok != "" {
			header = "Bearer " + tok
		}
	}

	tokenStr, err := auth.BearerToken(header)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Unauthorized",
			"reason":  authReason(err),
		})
		return
	}

	claims, err := auth.Parse([]byte(s.cfg.JWTSecret), tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Unauthorized",
			"reason":  authReason(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Authorized",
		"profile": gin.H{
			"username":      claims.Username,
			"authenticated": true,
			"token_expires": claims.ExpiresAt.Time.Format(time.RFC3339),
			"auth_type":     "jwt",
		},
		"movies_count": s.catalog.Count(),
	})
}

// authReason maps auth failures to the reason strings the profile endpoints
// report.
func authReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrNoAuthHeader):
		return "Authorization header missing"
	case errors.Is(err, auth.ErrBadScheme):
		return "Invalid authentication scheme"
	case errors.Is(err, auth.ErrBadAuthHeader):
		return "Invalid authorization header"
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token expired"
	default:
		return "Invalid token"
	}
}
