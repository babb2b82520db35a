package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gawrycy/fin-health-pulse/config"
	"github.com/Gawrycy/fin-health-pulse/database"
	"github.com/Gawrycy/fin-health-pulse/models"
)

func createJWT(userID, role, organizationID string) (string, error) {
	claims := models.JwtClaims{
		UserID:         userID,
		Role:           role,
		OrganizationID: organizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// HandleRegister creates a new client user together with their organization.
// POST /api/v1/auth/register
func HandleRegister(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Missing required fields (name, email, password)"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Could not process password"})
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to start database transaction"})
	}
	defer tx.Rollback(ctx)

	orgName := req.OrganizationName
	if orgName == "" {
		orgName = req.Name
	}

	var orgID string
	err = tx.QueryRow(ctx, `INSERT INTO organizations (name) VALUES ($1) RETURNING id`, orgName).Scan(&orgID)
	if err != nil {
		log.Printf("Error creating organization: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Could not create organization"})
	}

	var user models.User
	err = tx.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role, organization_id)
		VALUES ($1, $2, $3, 'client', $4)
		RETURNING id, name, email, role, is_active, created_at, updated_at
	`, req.Name, req.Email, string(hashedPassword), orgID).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Could not create user (email may already be in use)"})
	}
	user.OrganizationID = &orgID

	if err := tx.Commit(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to commit transaction"})
	}

	token, err := createJWT(user.ID, user.Role, orgID)
	if err != nil {
		log.Printf("Error creating JWT for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Could not create session"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"token": token, "user": user}})
}

// HandleLogin authenticates a user and returns a JWT token.
// POST /api/v1/auth/login
func HandleLogin(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	var user models.User
	var passwordHash string
	var orgID *string

	err := db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, organization_id, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`, req.Email).Scan(
		&user.ID, &user.Name, &user.Email, &passwordHash, &user.Role, &orgID, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
		}
		log.Printf("Database error during login for email %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}
	user.OrganizationID = orgID

	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "User account is inactive"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}

	organizationID := ""
	if orgID != nil {
		organizationID = *orgID
	}
	token, err := createJWT(user.ID, user.Role, organizationID)
	if err != nil {
		log.Printf("Error creating JWT for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Could not create session"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"token": token, "user": user}})
}
