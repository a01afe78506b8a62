package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/models"
	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/app/routes"
	"github.com/edupanel/campuscore/internal/middleware"
	"github.com/edupanel/campuscore/internal/pkg/auth"
)

// Stub services with overridable function fields so each test chooses one
// behavior and everything else fails loudly.

type stubDepartmentService struct {
	list   func(ctx context.Context) ([]*models.Department, error)
	get    func(ctx context.Context, id int64) (*models.Department, error)
	create func(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	update func(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	delete func(ctx context.Context, id int64) error
}

func (s *stubDepartmentService) List(ctx context.Context) ([]*models.Department, error) {
	return s.list(ctx)
}

func (s *stubDepartmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	return s.get(ctx, id)
}

func (s *stubDepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	return s.create(ctx, req)
}

func (s *stubDepartmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	return s.update(ctx, id, req)
}

func (s *stubDepartmentService) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

type stubSchoolService struct {
	list   func(ctx context.Context) ([]*models.School, error)
	get    func(ctx context.Context, id int64) (*models.School, error)
	create func(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error)
	update func(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error)
	delete func(ctx context.Context, id int64) error
}

func (s *stubSchoolService) List(ctx context.Context) ([]*models.School, error) { return s.list(ctx) }

func (s *stubSchoolService) Get(ctx context.Context, id int64) (*models.School, error) {
	return s.get(ctx, id)
}

func (s *stubSchoolService) Create(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error) {
	return s.create(ctx, req)
}

func (s *stubSchoolService) Update(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error) {
	return s.update(ctx, id, req)
}

func (s *stubSchoolService) Delete(ctx context.Context, id int64) error { return s.delete(ctx, id) }

type stubSessionService struct {
	list   func(ctx context.Context) ([]*models.Session, error)
	get    func(ctx context.Context, id int64) (*models.Session, error)
	create func(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error)
	update func(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*models.Session, error)
	delete func(ctx context.Context, id int64) error
}

func (s *stubSessionService) List(ctx context.Context) ([]*models.Session, error) {
	return s.list(ctx)
}

func (s *stubSessionService) Get(ctx context.Context, id int64) (*models.Session, error) {
	return s.get(ctx, id)
}

func (s *stubSessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error) {
	return s.create(ctx, req)
}

func (s *stubSessionService) Update(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*models.Session, error) {
	return s.update(ctx, id, req)
}

func (s *stubSessionService) Delete(ctx context.Context, id int64) error { return s.delete(ctx, id) }

type stubCourseService struct {
	list   func(ctx context.Context, schoolID, sessionID int64) ([]*models.Course, error)
	get    func(ctx context.Context, id int64) (*models.Course, error)
	create func(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	update func(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	delete func(ctx context.Context, id int64) error
}

func (s *stubCourseService) List(ctx context.Context, schoolID, sessionID int64) ([]*models.Course, error) {
	return s.list(ctx, schoolID, sessionID)
}

func (s *stubCourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	return s.get(ctx, id)
}

func (s *stubCourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	return s.create(ctx, req)
}

func (s *stubCourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	return s.update(ctx, id, req)
}

func (s *stubCourseService) Delete(ctx context.Context, id int64) error { return s.delete(ctx, id) }

type stubAuthService struct {
	register func(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	login    func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	refresh  func(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	logout   func(ctx context.Context, refreshToken string) error
}

func (s *stubAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.register(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.login(ctx, req)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	return s.refresh(ctx, refreshToken)
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.logout(ctx, refreshToken)
}

// testEnv wires the stub services into a full router behind real JWT
// middleware, so tests exercise routing and auth exactly as the server does.
type testEnv struct {
	router      *gin.Engine
	departments *stubDepartmentService
	schools     *stubSchoolService
	sessions    *stubSessionService
	courses     *stubCourseService
	auth        *stubAuthService
	token       string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		departments: &stubDepartmentService{},
		schools:     &stubSchoolService{},
		sessions:    &stubSessionService{},
		courses:     &stubCourseService{},
		auth:        &stubAuthService{},
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campuscore-test",
	})

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:    1,
		Email: "staff@campuscore.local",
		Role:  models.RoleStaff,
	})
	if err != nil {
		t.Fatalf("generating test token: %v", err)
	}
	env.token = accessToken

	router := gin.New()
	routes.SetupRouter(router,
		NewAuthController(env.auth),
		NewDepartmentController(env.departments),
		NewSchoolController(env.schools),
		NewSessionController(env.sessions),
		NewCourseController(env.courses),
		middleware.NewAuthMiddleware(jwtService),
	)
	env.router = router
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+env.token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (bool, json.RawMessage, *dto.ErrorDetail) {
	t.Helper()
	var env struct {
		Success bool             `json:"success"`
		Data    json.RawMessage  `json:"data"`
		Error   *dto.ErrorDetail `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding envelope from %q: %v", w.Body.String(), err)
	}
	return env.Success, env.Data, env.Error
}
