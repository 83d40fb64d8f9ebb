package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrContactNotFound 在指定的留言不存在时返回
	ErrContactNotFound = errors.New("contact message not found")
	// ErrContactInvalidInput 在留言字段缺失或邮箱格式非法时返回
	ErrContactInvalidInput = errors.New("invalid contact message input")
)

var validate = validator.New()

// ContactService 负责联系表单留言的持久化与查询
type ContactService struct {
	db *gorm.DB
}

// NewContactService 构造 ContactService
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// ContactInput 描述访客提交的留言字段
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// Create 校验并保存一条留言，返回含提交凭证的记录。
// 邮箱格式在落库前强制校验，不合法时不写入任何数据。
func (s *ContactService) Create(input ContactInput) (*db.ContactMessage, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	message := db.ContactMessage{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Message:   strings.TrimSpace(input.Message),
		Reference: uuid.NewString(),
		Status:    db.ContactStatusNew,
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	return &message, nil
}

// List 返回全部留言，最新的排在前面。
func (s *ContactService) List() ([]db.ContactMessage, error) {
	var messages []db.ContactMessage
	if err := s.db.Order("created_at DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// Get 根据主键获取留言
func (s *ContactService) Get(id uint) (*db.ContactMessage, error) {
	var message db.ContactMessage
	if err := s.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact message: %w", err)
	}
	return &message, nil
}

// MarkRead 将留言标记为已读
func (s *ContactService) MarkRead(id uint) (*db.ContactMessage, error) {
	message, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if message.Status == db.ContactStatusRead {
		return message, nil
	}

	message.Status = db.ContactStatusRead
	if err := s.db.Save(message).Error; err != nil {
		return nil, fmt.Errorf("mark contact message read: %w", err)
	}
	return message, nil
}

func validateContactInput(input ContactInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrContactInvalidInput)
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrContactInvalidInput)
	}
	if err := validate.Var(email, "email"); err != nil {
		return fmt.Errorf("%w: email is malformed", ErrContactInvalidInput)
	}
	if strings.TrimSpace(input.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrContactInvalidInput)
	}
	return nil
}
