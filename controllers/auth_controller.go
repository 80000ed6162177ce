package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linkbridge/linkbridgebackend/database"
	"github.com/linkbridge/linkbridgebackend/dto"
	"github.com/linkbridge/linkbridgebackend/models"
	"github.com/linkbridge/linkbridgebackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// POST /auth/register
func Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RegisterDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		now := time.Now().UTC()
		user := models.User{
			ID:           bson.NewObjectID(),
			Email:        email,
			PasswordHash: hash,
			FullName:     strings.TrimSpace(body.FullName),
			Company:      strings.TrimSpace(body.Company),
			Role:         models.Role(body.Role),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		usersCol := database.OpenCollection("users")
		if _, err := usersCol.InsertOne(c.Request.Context(), user); err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered", "field": "email"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"fullName":  user.FullName,
			"role":      user.Role,
			"createdAt": user.CreatedAt,
		})
	}
}

// POST /auth/login
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		email := strings.ToLower(strings.TrimSpace(body.Email))

		var user models.User
		usersCol := database.OpenCollection("users")
		if err := usersCol.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		now := time.Now().UTC()
		if user.IsLocked(now) {
			// Locked accounts are rejected before the password is even checked
			c.JSON(http.StatusBadRequest, gin.H{"error": "account temporarily locked", "code": "ACCOUNT_LOCKED"})
			return
		}

		if user.PasswordHash == "" {
			// Google-only account
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if err := utils.CheckPassword(user.PasswordHash, body.Password); err != nil {
			incLoginAttempts(c, &user)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			return
		}

		configCol := database.OpenCollection("system_configs")
		if utils.GetConfigBool(ctx, configCol, models.ConfigTwoFactorRequired) {
			if body.Code == "" {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "verification code required",
					"code":  "TWO_FACTOR_REQUIRED",
				})
				return
			}
			if err := consumeTwoFactorCode(c, user.Email, models.TwoFactorPurposeLogin, body.Code); err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired verification code"})
				return
			}
		}

		resetLoginAttempts(c, user.ID)
		issueTokens(c, &user, "password")
	}
}

// POST /auth/google
func GoogleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.GoogleLoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		profile, err := utils.VerifyGoogleIDToken(ctx, body.IDToken)
		if err != nil {
			if errors.Is(err, utils.ErrGoogleNotConfigured) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "google sign-in not configured", "code": "GOOGLE_NOT_CONFIGURED"})
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid google token"})
			return
		}

		email := strings.ToLower(profile.Email)
		usersCol := database.OpenCollection("users")

		var user models.User
		err = usersCol.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			// first login creates the local account
			role := models.RoleAdvertiser
			if body.Role != "" {
				role = models.Role(body.Role)
			}
			now := time.Now().UTC()
			user = models.User{
				ID:        bson.NewObjectID(),
				Email:     email,
				FullName:  profile.Name,
				Role:      role,
				AvatarURL: profile.Picture,
				GoogleSub: profile.Sub,
				IsActive:  true,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if _, err := usersCol.InsertOne(ctx, user); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			return
		}

		if user.GoogleSub == "" {
			_, _ = usersCol.UpdateByID(ctx, user.ID, bson.M{
				"$set": bson.M{"googleSub": profile.Sub, "updatedAt": time.Now().UTC()},
			})
		}

		issueTokens(c, &user, "google")
	}
}

// POST /auth/refresh
func Refresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usersCol := database.OpenCollection("users")
		refreshCol := database.OpenCollection("refresh_tokens")

		hash, err := c.Cookie("refreshToken")
		if err != nil || hash == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing refresh token"})
			return
		}
		var rt models.RefreshToken
		err = refreshCol.FindOne(ctx, bson.M{
			"tokenHash": hash,
			"revokedAt": bson.M{"$exists": false},
			"expiresAt": bson.M{"$gt": time.Now().UTC()},
		}).Decode(&rt)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}

		var user models.User
		if err := usersCol.FindOne(ctx, bson.M{"_id": rt.UserID}).Decode(&user); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			return
		}

		// Rotate refresh token
		newHash, err := utils.GenerateRefreshToken(user.ID.Hex())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
			return
		}

		now := time.Now().UTC()

		_, err = refreshCol.UpdateByID(ctx, rt.ID, bson.M{
			"$set": bson.M{
				"revokedAt":  now,
				"replacedBy": newHash,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke refresh token"})
			return
		}

		_, err = refreshCol.InsertOne(ctx, models.RefreshToken{
			UserID:    user.ID,
			TokenHash: newHash,
			ExpiresAt: now.Add(utils.RefreshTTL()),
			CreatedAt: now,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store refresh token"})
			return
		}

		accessToken, err := utils.GenerateAccessToken(user.ID.Hex(), user.Email, string(user.Role), utils.AccessTTL())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate access token"})
			return
		}

		setRefreshCookie(c, newHash)
		c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
	}
}

// POST /auth/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		refreshCol := database.OpenCollection("refresh_tokens")
		sessionsCol := database.OpenCollection("login_sessions")

		hash, _ := c.Cookie("refreshToken")
		utils.ClearRefreshCookie(c)

		now := time.Now().UTC()

		// best effort revoke
		if hash != "" {
			var rt models.RefreshToken
			if err := refreshCol.FindOneAndUpdate(ctx, bson.M{
				"tokenHash": hash,
				"revokedAt": bson.M{"$exists": false},
			}, bson.M{
				"$set": bson.M{"revokedAt": now},
			}).Decode(&rt); err == nil {
				_, _ = sessionsCol.UpdateMany(ctx, bson.M{
					"userId":   rt.UserID,
					"isActive": true,
				}, bson.M{
					"$set": bson.M{"isActive": false, "closedAt": now},
				})
			}
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /auth/2fa/request
func RequestTwoFactor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RequestTwoFactorDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		purpose := models.TwoFactorPurpose(strings.ToUpper(strings.TrimSpace(body.Purpose)))
		switch purpose {
		case models.TwoFactorPurposeLogin, models.TwoFactorPurposeEmailVerify, models.TwoFactorPurposePasswordReset:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown purpose"})
			return
		}

		code, err := utils.GenerateTwoFactorCode()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate code"})
			return
		}

		now := time.Now().UTC()
		email := strings.ToLower(strings.TrimSpace(body.Email))
		doc := models.TwoFactorCode{
			Email:     email,
			Purpose:   purpose,
			Code:      code,
			Used:      false,
			ExpiresAt: now.Add(utils.TwoFactorCodeTTL),
			CreatedAt: now,
		}

		codesCol := database.OpenCollection("twofactor_codes")
		if _, err := codesCol.InsertOne(c.Request.Context(), doc); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store code"})
			return
		}

		if err := utils.SendTwoFactorCode(email, code); err != nil {
			log.Println("send 2fa mail:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send code"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /auth/2fa/verify
func VerifyTwoFactor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.VerifyTwoFactorDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		purpose := models.TwoFactorPurpose(strings.ToUpper(strings.TrimSpace(body.Purpose)))
		email := strings.ToLower(strings.TrimSpace(body.Email))

		if err := consumeTwoFactorCode(c, email, purpose, body.Code); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired verification code"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /auth/forgot-password
func ForgotPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ForgotPasswordDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		email := strings.ToLower(strings.TrimSpace(body.Email))
		usersCol := database.OpenCollection("users")

		var user models.User
		if err := usersCol.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
			// do not reveal whether the address exists
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}

		token := uuid.New().String()
		expires := time.Now().UTC().Add(time.Hour)

		_, err := usersCol.UpdateByID(ctx, user.ID, bson.M{
			"$set": bson.M{
				"resetToken":        token,
				"resetTokenExpires": expires,
				"updatedAt":         time.Now().UTC(),
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store reset token"})
			return
		}

		resetURL := strings.TrimRight(os.Getenv("DASHBOARD_URL"), "/") + "/reset-password?token=" + token + "&email=" + email
		if err := utils.SendPasswordReset(email, resetURL); err != nil {
			log.Println("send reset mail:", err)
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /auth/reset-password
func ResetPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ResetPasswordDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		email := strings.ToLower(strings.TrimSpace(body.Email))
		usersCol := database.OpenCollection("users")

		var user models.User
		if err := usersCol.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired reset token"})
			return
		}

		if !user.ResetTokenValid(body.Token, time.Now().UTC()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired reset token"})
			return
		}

		hash, err := utils.HashPassword(body.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		now := time.Now().UTC()
		// clearing the token pair makes the reset single use
		_, err = usersCol.UpdateByID(ctx, user.ID, bson.M{
			"$set": bson.M{
				"passwordHash":  hash,
				"loginAttempts": 0,
				"updatedAt":     now,
			},
			"$unset": bson.M{
				"resetToken":        "",
				"resetTokenExpires": "",
				"lockUntil":         "",
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update password"})
			return
		}

		_ = RevokeAllRefreshTokens(c, user.ID)

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func RevokeAllRefreshTokens(c *gin.Context, userID bson.ObjectID) error {
	refreshCol := database.OpenCollection("refresh_tokens")
	now := time.Now().UTC()
	_, err := refreshCol.UpdateMany(c.Request.Context(), bson.M{
		"userId":    userID,
		"revokedAt": bson.M{"$exists": false},
	}, bson.M{
		"$set": bson.M{"revokedAt": now},
	})
	return err
}

// issueTokens writes the refresh token doc and login session, sets the
// refresh cookie and responds with the access token.
func issueTokens(c *gin.Context, user *models.User, method string) {
	ctx := c.Request.Context()

	accessToken, err := utils.GenerateAccessToken(user.ID.Hex(), user.Email, string(user.Role), utils.AccessTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate access token"})
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate refresh token"})
		return
	}

	now := time.Now().UTC()
	refreshCol := database.OpenCollection("refresh_tokens")
	if _, err := refreshCol.InsertOne(ctx, models.RefreshToken{
		UserID:    user.ID,
		TokenHash: refreshToken,
		ExpiresAt: now.Add(utils.RefreshTTL()),
		CreatedAt: now,
	}); err != nil {
		log.Print("store refresh token: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "connection failed"})
		return
	}

	sessionsCol := database.OpenCollection("login_sessions")
	if _, err := sessionsCol.InsertOne(ctx, models.LoginSession{
		UserID:    user.ID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Method:    method,
		IsActive:  true,
		CreatedAt: now,
	}); err != nil {
		log.Print("store login session: ", err)
	}

	setRefreshCookie(c, refreshToken)
	c.JSON(http.StatusOK, gin.H{
		"accessToken": accessToken,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"fullName":  user.FullName,
			"role":      user.Role,
			"avatarUrl": user.AvatarURL,
		},
	})
}

func setRefreshCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "refreshToken",
		Value:    token,
		Path:     "/auth",
		MaxAge:   int(utils.RefreshTTL().Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode, // for cross-site
	})
}

// incLoginAttempts bumps the failure counter and locks the account once the
// threshold is hit.
func incLoginAttempts(c *gin.Context, user *models.User) {
	usersCol := database.OpenCollection("users")
	now := time.Now().UTC()

	update := bson.M{
		"$inc": bson.M{"loginAttempts": 1},
		"$set": bson.M{"updatedAt": now},
	}
	if user.LoginAttempts+1 >= utils.MaxLoginAttempts() {
		update = bson.M{
			"$set": bson.M{
				"loginAttempts": 0,
				"lockUntil":     now.Add(utils.LockDuration()),
				"updatedAt":     now,
			},
		}
	}
	if _, err := usersCol.UpdateByID(c.Request.Context(), user.ID, update); err != nil {
		log.Print("inc login attempts: ", err)
	}
}

func resetLoginAttempts(c *gin.Context, userID bson.ObjectID) {
	usersCol := database.OpenCollection("users")
	_, err := usersCol.UpdateByID(c.Request.Context(), userID, bson.M{
		"$set":   bson.M{"loginAttempts": 0, "updatedAt": time.Now().UTC()},
		"$unset": bson.M{"lockUntil": ""},
	})
	if err != nil {
		log.Print("reset login attempts: ", err)
	}
}

// consumeTwoFactorCode atomically marks a matching unexpired, unused code as
// used. A second verify of the same code fails the filter.
func consumeTwoFactorCode(c *gin.Context, email string, purpose models.TwoFactorPurpose, code string) error {
	codesCol := database.OpenCollection("twofactor_codes")
	var doc models.TwoFactorCode
	return codesCol.FindOneAndUpdate(c.Request.Context(), bson.M{
		"email":     email,
		"purpose":   purpose,
		"code":      code,
		"used":      false,
		"expiresAt": bson.M{"$gt": time.Now().UTC()},
	}, bson.M{
		"$set": bson.M{"used": true},
	}).Decode(&doc)
}
