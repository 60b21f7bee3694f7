package service

import (
	"context"
	"net/mail"
	"time"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/models"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     *repository.UserRepository
	jwtSecret []byte
}

func NewAuthService(users *repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret)}
}

type RegisterUserData struct {
	Name     string
	Email    string
	Password string
	Role     string
	Avatar   string

	FavoriteGenres []string
}

// ================== REGISTER & LOGIN ==================

// Register crea un usuario nuevo. El role viene del body, pero solo se
// permite "normal" o "admin"; vacío equivale a "normal".
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.User, error) {
	if data.Name == "" || data.Email == "" || data.Password == "" {
		return nil, apperr.BadRequest("name, email and password are required")
	}
	role := data.Role
	if role == "" {
		role = models.RoleNormal
	}
	if role != models.RoleNormal && role != models.RoleAdmin {
		return nil, apperr.BadRequest("invalid role (must be normal|admin)")
	}
	if _, err := mail.ParseAddress(data.Email); err != nil {
		return nil, apperr.BadRequest("invalid email address")
	}
	if len(data.Password) < 6 {
		return nil, apperr.BadRequest("password must be at least 6 characters")
	}

	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &models.User{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		Role:         role,
		Avatar:       data.Avatar,
		Preferences: models.Preferences{
			FavoriteGenres: data.FavoriteGenres,
		},
		Wishlist:             []primitive.ObjectID{},
		CustomLists:          []models.CustomList{},
		NotificationsEnabled: true,
		Notifications:        []models.Notification{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, apperr.BadRequest("email and password are required")
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID.Hex(),
		"role": u.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}

// ================== PERFIL ==================

type UpdateProfileData struct {
	Name           *string
	Avatar         *string
	FavoriteGenres []string
	FavoriteActors []primitive.ObjectID
}

// UpdateProfile actualiza nombre, avatar y preferencias del usuario autenticado.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, data UpdateProfileData) (*models.User, error) {
	if data.Name == nil && data.Avatar == nil && data.FavoriteGenres == nil && data.FavoriteActors == nil {
		return nil, apperr.BadRequest("no fields to update")
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	if data.Name != nil {
		if *data.Name == "" {
			return nil, apperr.BadRequest("name cannot be empty")
		}
		u.Name = *data.Name
	}
	if data.Avatar != nil {
		u.Avatar = *data.Avatar
	}
	if data.FavoriteGenres != nil {
		u.Preferences.FavoriteGenres = data.FavoriteGenres
	}
	if data.FavoriteActors != nil {
		u.Preferences.FavoriteActors = data.FavoriteActors
	}
	u.UpdatedAt = time.Now().UTC()

	if err := s.users.Save(ctx, u); err != nil {
		return nil, saveErr(err)
	}
	return u, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

// ================== ADMIN ==================

func (s *AuthService) ListUsers(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	page, limit = normalizePage(page, limit)
	users, err := s.users.FindAll(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// DeleteUser borra la cuenta. Sus reviews y posts conservan la
// referencia colgante, igual que el resto de los borrados.
func (s *AuthService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	ok, err := s.users.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("user not found")
	}
	return nil
}
