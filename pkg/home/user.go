package home

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Defaults seeded into AlertPreferences on registration. Alerting starts
// disabled until the user opts in from settings.
const (
	defaultTemperatureThreshold = 85.0
	defaultOfflineGraceMinutes  = 30
)

func (h *Home) register(email, name, password string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryUser),
	)

	var existing models.User
	err := h.Db.Conn.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Preferences: models.AlertPreferences{
			TemperatureEnabled:  false,
			TemperatureValue:    defaultTemperatureThreshold,
			OfflineEnabled:      false,
			OfflineGraceMinutes: defaultOfflineGraceMinutes,
		},
	}

	if err := h.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	logger.Info("User registered", zap.String("user_id", user.ID))
	return &user, nil
}

func (h *Home) authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := h.Db.Conn.Preload("Preferences").First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

type IAccountImpl struct {
	home *Home
}

func (ia *IAccountImpl) Register(email, name, password string) (*models.User, error) {
	return ia.home.register(email, name, password)
}

func (ia *IAccountImpl) Authenticate(email, password string) (*models.User, error) {
	return ia.home.authenticate(email, password)
}

func (h *Home) GetIAccount() IAccount {
	return &IAccountImpl{home: h}
}
