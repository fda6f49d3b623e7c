package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"exodus_backend/internals/configs"
	"exodus_backend/internals/features/users/auth/dto"
	"exodus_backend/internals/features/users/auth/model"
	helper "exodus_backend/internals/helpers"
	"exodus_backend/internals/helpers/mailer"
)

const otpValidity = 30 * time.Minute

var validate = validator.New()

type AuthController struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

func NewAuthController(db *gorm.DB, m mailer.Mailer) *AuthController {
	return &AuthController{DB: db, Mailer: m}
}

// 🟢 SIGNUP
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing model.UserModel
	if err := ac.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] signup lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] password hash: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	user := model.UserModel{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          email,
		HashedPassword: string(hashed),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("[ERROR] signup create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	token, err := helper.CreateAccessToken(user.ID, user.Email)
	if err != nil {
		log.Printf("[ERROR] token create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create token")
	}

	log.Printf("[SUCCESS] user %d signed up", user.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created",
		dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// 🟢 LOGIN
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user model.UserModel
	err := ac.DB.Where("email = ?", email).First(&user).Error
	// Same message for unknown email and wrong password, no user enumeration.
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := helper.CreateAccessToken(user.ID, user.Email)
	if err != nil {
		log.Printf("[ERROR] token create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create token")
	}

	return helper.Success(c, "Login successful",
		dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// 🟢 GOOGLE SIGN-IN
func (ac *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		log.Printf("[ERROR] google token decode: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	email := strings.ToLower(claimSet.Email)
	var user model.UserModel
	err = ac.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		firstName, lastName := claimSet.GivenName, claimSet.FamilyName
		if firstName == "" {
			firstName = claimSet.Name
		}
		// Google accounts get an unguessable placeholder password; password
		// login stays possible after a reset flow.
		placeholder, herr := bcrypt.GenerateFromPassword([]byte(mailer.GenerateOTP()+claimSet.Sub), bcrypt.DefaultCost)
		if herr != nil {
			log.Printf("[ERROR] password hash: %v", herr)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
		}
		user = model.UserModel{
			FirstName:      firstName,
			LastName:       lastName,
			Email:          email,
			HashedPassword: string(placeholder),
		}
		if cerr := ac.DB.Create(&user).Error; cerr != nil {
			log.Printf("[ERROR] google signup create: %v", cerr)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
		}
		log.Printf("[SUCCESS] user %d created via Google sign-in", user.ID)
	} else if err != nil {
		log.Printf("[ERROR] google login lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}

	token, err := helper.CreateAccessToken(user.ID, user.Email)
	if err != nil {
		log.Printf("[ERROR] token create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create token")
	}

	return helper.Success(c, "Login successful",
		dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// 🟢 CURRENT USER
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	var user model.UserModel
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}

	return helper.Success(c, "Current user", dto.FromModelUser(&user))
}

// 🟢 FORGOT PASSWORD — issues a 30-minute single-use OTP
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user model.UserModel
	if err := ac.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// Same response whether or not the account exists.
		return helper.Success(c, "If the email is registered, a reset code has been sent", nil)
	}

	otp := mailer.GenerateOTP()
	reset := model.PasswordResetTokenModel{Email: email, OTP: otp}
	if err := ac.DB.Create(&reset).Error; err != nil {
		log.Printf("[ERROR] reset token create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue reset code")
	}

	if err := ac.Mailer.SendPasswordResetEmail(email, otp); err != nil {
		log.Printf("[ERROR] reset email: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to send password reset email")
	}

	return helper.Success(c, "If the email is registered, a reset code has been sent", nil)
}

// 🟢 RESET PASSWORD
func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	cutoff := time.Now().Add(-otpValidity)

	var reset model.PasswordResetTokenModel
	err := ac.DB.Where("email = ? AND otp = ? AND used = ? AND created_at > ?",
		email, req.OTP, false, cutoff).
		Order("created_at DESC").First(&reset).Error
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or expired reset code")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] password hash: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PasswordResetTokenModel{}).
			Where("id = ?", reset.ID).Update("used", true).Error; err != nil {
			return err
		}
		return tx.Model(&model.UserModel{}).
			Where("email = ?", email).Update("hashed_password", string(hashed)).Error
	})
	if err != nil {
		log.Printf("[ERROR] password reset: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	log.Printf("[SUCCESS] password reset for %s", email)
	return helper.Success(c, "Password has been reset", nil)
}
