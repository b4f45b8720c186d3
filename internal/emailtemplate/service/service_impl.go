package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	templatedomain "github.com/kyberbiz/kyberbiz/internal/emailtemplate/domain"
)

type ServiceParam struct {
	fx.In

	Repository templatedomain.Repository
	Node       *snowflake.Node
	Logger     *zap.Logger
}

type service struct {
	repo templatedomain.Repository
	node *snowflake.Node
	log  *zap.Logger
}

func NewService(p ServiceParam) templatedomain.Service {
	return &service{
		repo: p.Repository,
		node: p.Node,
		log:  p.Logger.Named("emailtemplate.service"),
	}
}

func (s *service) List(ctx context.Context) ([]templatedomain.EmailTemplate, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		seeds := builtinTemplates(time.Now().UTC())
		if err := s.repo.CreateBatch(ctx, seeds); err != nil {
			return nil, err
		}
		s.log.Info("seeded built-in email templates", zap.Int("count", len(seeds)))
	}
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*templatedomain.EmailTemplate, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, templatedomain.ErrNotFound
	}
	return template, nil
}

func (s *service) Create(ctx context.Context, input templatedomain.Input) (*templatedomain.EmailTemplate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	template := &templatedomain.EmailTemplate{
		ID:        s.node.Generate().String(),
		Name:      input.Name,
		Subject:   input.Subject,
		Body:      input.Body,
		Theme:     input.Theme,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *service) Update(ctx context.Context, id string, input templatedomain.Input) (*templatedomain.EmailTemplate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	template, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if template.IsBuiltin() {
		return nil, templatedomain.ErrBuiltin
	}

	template.Name = input.Name
	template.Subject = input.Subject
	template.Body = input.Body
	template.Theme = input.Theme
	template.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	template, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if template.IsBuiltin() {
		return templatedomain.ErrBuiltin
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) SetDefault(ctx context.Context, id string) (*templatedomain.EmailTemplate, error) {
	if err := s.repo.SetDefault(ctx, id); err != nil {
		return nil, err
	}
	s.log.Info("default email template changed", zap.String("template_id", id))
	return s.Get(ctx, id)
}
