package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dsa-tracker/internal/auth"
	"dsa-tracker/internal/domain"
	"dsa-tracker/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	problems service.ProblemService
	codec    *auth.Codec
	logger   *logrus.Logger
}

func NewHandler(users service.UserService, problems service.ProblemService, codec *auth.Codec, logger *logrus.Logger) *Handler {
	return &Handler{
		users:    users,
		problems: problems,
		codec:    codec,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	if h.logger != nil {
		router.Use(requestLogMiddleware(h.logger))
	}

	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		protected := api.Group("")
		protected.Use(authMiddleware(h.codec))
		{
			protected.GET("/problems", h.listProblems)
			protected.POST("/problems", h.createProblem)
			protected.PUT("/problems/:id", h.updateProblem)
			protected.DELETE("/problems/:id", h.deleteProblem)
		}
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// problemRequest uses pointers so the handlers can tell an omitted field from
// an explicit zero value; defaulting only applies to omitted fields.
type problemRequest struct {
	Title       *string `json:"title"`
	Status      *string `json:"status"`
	Platform    *string `json:"platform"`
	TimesSolved *int    `json:"timesSolved"`
	Date        *string `json:"date"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProblemResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Platform    string `json:"platform"`
	TimesSolved int    `json:"timesSolved"`
	Date        string `json:"date"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields required"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields required"})
		case errors.Is(err, service.ErrEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, userResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := h.codec.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

func (h *Handler) listProblems(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)

	problems, err := h.problems.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]ProblemResponse, len(problems))
	for i := range problems {
		resp[i] = problemToResponse(problems[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createProblem(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)

	var req problemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	problem, err := h.problems.Create(c.Request.Context(), userID, problemInput(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, problemToResponse(*problem))
}

func (h *Handler) updateProblem(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)
	id := c.Param("id")

	var req problemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	problem, err := h.problems.Update(c.Request.Context(), userID, id, problemInput(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Unknown id and foreign owner look identical: a null body, no error.
	if problem == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, problemToResponse(*problem))
}

func (h *Handler) deleteProblem(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)
	id := c.Param("id")

	if err := h.problems.Delete(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func problemInput(req problemRequest) service.ProblemInput {
	return service.ProblemInput{
		Title:       req.Title,
		Status:      req.Status,
		Platform:    req.Platform,
		TimesSolved: req.TimesSolved,
		Date:        req.Date,
	}
}

func problemToResponse(problem domain.Problem) ProblemResponse {
	return ProblemResponse{
		ID:          problem.ID,
		UserID:      problem.UserID,
		Title:       problem.Title,
		Status:      string(problem.Status),
		Platform:    problem.Platform,
		TimesSolved: problem.TimesSolved,
		Date:        problem.Date,
	}
}
