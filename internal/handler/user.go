package handler

import (
	"net/http"
	"strings"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/pkg/auth"
	"tush00nka/studybud/internal/pkg/httputils"
	"tush00nka/studybud/internal/repository"
	"tush00nka/studybud/internal/service"

	"github.com/gorilla/mux"
)

const maxAvatarSize = 5 << 20

type UserHandler struct {
	userService    service.UserService
	roomService    service.RoomService
	messageService service.MessageService
	topicService   service.TopicService
	sessions       service.SessionService
	secureCookies  bool
}

func NewUserHandler(
	userService service.UserService,
	roomService service.RoomService,
	messageService service.MessageService,
	topicService service.TopicService,
	sessions service.SessionService,
	secureCookies bool,
) *UserHandler {
	return &UserHandler{
		userService:    userService,
		roomService:    roomService,
		messageService: messageService,
		topicService:   topicService,
		sessions:       sessions,
		secureCookies:  secureCookies,
	}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router, mw *AuthMiddleware) {
	router.HandleFunc("/login", h.loginPage).Methods("GET")
	router.HandleFunc("/login", h.loginUser).Methods("POST", "OPTIONS")
	router.HandleFunc("/register", h.registerUser).Methods("POST", "OPTIONS")
	router.HandleFunc("/logout", h.logoutUser).Methods("GET", "POST", "OPTIONS")
	router.HandleFunc("/profile/{id:[0-9]+}", h.getProfile).Methods("GET", "OPTIONS")
	router.Handle("/update-user", mw.RequireAuth(h.getCurrentUser)).Methods("GET")
	router.Handle("/update-user", mw.RequireAuth(h.updateUser)).Methods("POST", "OPTIONS")
	router.Handle("/update-user/avatar", mw.RequireAuth(h.uploadAvatar)).Methods("POST", "OPTIONS")
	router.Handle("/delete-user", mw.RequireAuth(h.deleteUser)).Methods("POST", "OPTIONS")
}

type TokenResponse struct {
	Token string `json:"token"`
	Next  string `json:"next,omitempty"`
}

type LoginPageResponse struct {
	Message string `json:"message"`
	Next    string `json:"next,omitempty"`
}

// setSession hands the token to browsers as an HttpOnly cookie.
func (h *UserHandler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *UserHandler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

// @Summary Login page
// @Description Tells anonymous clients to log in; logged in users are sent on
// @Tags auth
// @Produce json
// @Param next query string false "Where to go after logging in"
// @Success 200 {object} LoginPageResponse
// @Success 302
// @Router /login [get]
func (h *UserHandler) loginPage(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.URL.Query().Get("next"))
	if CurrentUserID(r.Context()) != 0 {
		if next == "" {
			next = "/"
		}
		http.Redirect(w, r, next, http.StatusFound)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, LoginPageResponse{Message: "Please log in", Next: next})
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// @Summary Register
// @Description Register an account and log in
// @Tags auth
// @ID register
// @Accept json
// @Produce json
// @Success 201 {object} TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Param registerData body RegisterRequest true "Register data"
// @Router /register [post]
func (h *UserHandler) registerUser(w http.ResponseWriter, r *http.Request) {
	var request RegisterRequest
	if err := httputils.DecodeJSON(r, &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterInput{
		Username:        request.Username,
		Email:           request.Email,
		Password:        request.Password,
		ConfirmPassword: request.ConfirmPassword,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	h.setSession(w, token)
	httputils.ResponseJSON(w, http.StatusCreated, TokenResponse{Token: token})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary Login
// @Description Log into an account. The token is returned and set as a cookie.
// @Tags auth
// @ID login
// @Accept json
// @Produce json
// @Param next query string false "Where to go after logging in"
// @Param loginData body LoginRequest true "Login data"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /login [post]
func (h *UserHandler) loginUser(w http.ResponseWriter, r *http.Request) {
	var request LoginRequest
	if err := httputils.DecodeJSON(r, &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), request.Username, request.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	h.setSession(w, token)
	httputils.ResponseJSON(w, http.StatusOK, TokenResponse{
		Token: token,
		Next:  safeNext(r.URL.Query().Get("next")),
	})
}

// @Summary Logout
// @Description Revoke the current token and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /logout [post]
func (h *UserHandler) logoutUser(w http.ResponseWriter, r *http.Request) {
	if claims := CurrentClaims(r.Context()); claims != nil {
		if err := h.sessions.Revoke(r.Context(), claims); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	h.clearSession(w)
	httputils.ResponseJSON(w, http.StatusOK, StatusResponse{Message: "Logged out"})
}

// AccountResponse is the logged in user's own view of their account.
type AccountResponse struct {
	*model.User
	Email string `json:"email"`
}

func newAccountResponse(user *model.User) AccountResponse {
	return AccountResponse{User: user, Email: user.Email}
}

type ProfileResponse struct {
	User     *model.User            `json:"user"`
	Rooms    []model.Room           `json:"rooms"`
	Messages []model.Message        `json:"messages"`
	Topics   []model.TopicWithCount `json:"topics"`
}

// @Summary Get profile
// @Description A user with the rooms they host, their messages and all topics
// @Tags users
// @ID get-profile
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /profile/{id} [get]
func (h *UserHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		httputils.ResponseError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	rooms, err := h.roomService.ListRooms(r.Context(), repository.RoomFilter{HostID: user.ID})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	messages, err := h.messageService.ListMessages(r.Context(), repository.MessageFilter{UserID: user.ID})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	topics, err := h.topicService.ListTopics(r.Context(), "", 0)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, ProfileResponse{
		User:     user,
		Rooms:    rooms,
		Messages: messages,
		Topics:   topics,
	})
}

// @Summary Current user
// @Description The logged in user, for the profile edit form
// @Tags users
// @Produce json
// @Success 200 {object} AccountResponse
// @Success 302
// @Router /update-user [get]
func (h *UserHandler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), CurrentUserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, newAccountResponse(user))
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
}

// @Summary Update profile
// @Description Edit the username, email, name and bio of the logged in user
// @Tags users
// @Accept json
// @Produce json
// @Param userData body UpdateUserRequest true "Profile data"
// @Success 200 {object} AccountResponse
// @Success 302
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /update-user [post]
func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	var request UpdateUserRequest
	if err := httputils.DecodeJSON(r, &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), CurrentUserID(r.Context()), service.ProfileInput{
		Username: request.Username,
		Email:    request.Email,
		Name:     request.Name,
		Bio:      request.Bio,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, newAccountResponse(user))
}

// @Summary Upload avatar
// @Description Upload a profile picture for the logged in user
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image"
// @Success 200 {object} AccountResponse
// @Success 302
// @Failure 400 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /update-user/avatar [post]
func (h *UserHandler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Avatar must be a multipart upload of at most 5MB")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Missing avatar file")
		return
	}
	defer file.Close()

	user, err := h.userService.SetAvatar(r.Context(), CurrentUserID(r.Context()), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, newAccountResponse(user))
}

// @Summary Delete account
// @Description Delete the logged in user and their messages. Hosted rooms stay without a host.
// @Tags users
// @Produce json
// @Success 200 {object} StatusResponse
// @Success 302
// @Failure 500 {object} response.ErrorResponse
// @Router /delete-user [post]
func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteAccount(r.Context(), CurrentUserID(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.sessions.Revoke(r.Context(), CurrentClaims(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.clearSession(w)
	httputils.ResponseJSON(w, http.StatusOK, StatusResponse{Message: "Account deleted"})
}
