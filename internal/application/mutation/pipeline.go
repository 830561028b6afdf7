package mutation

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

// TxHook se ejecuta dentro de la transacción de la mutación. Un error revierte la operación completa.
type TxHook interface {
	Name() string
	OnMutation(ctx context.Context, r ports.Repos, m Mutation) error
}

// CommitHook se ejecuta después del Commit. Sus errores se registran y no afectan la respuesta.
type CommitHook interface {
	Name() string
	AfterCommit(ctx context.Context, mutations []Mutation) error
}

// Pipeline lista ordenada de hooks posteriores a cada mutación.
type Pipeline struct {
	inTx        []TxHook
	afterCommit []CommitHook
	log         *logger.Logger
}

// NewPipeline construye un pipeline vacío.
func NewPipeline(log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{log: log}
}

// InTx agrega hooks transaccionales, en el orden dado.
func (p *Pipeline) InTx(hooks ...TxHook) *Pipeline {
	p.inTx = append(p.inTx, hooks...)
	return p
}

// AfterCommit agrega hooks post-commit, en el orden dado.
func (p *Pipeline) AfterCommit(hooks ...CommitHook) *Pipeline {
	p.afterCommit = append(p.afterCommit, hooks...)
	return p
}

// runInTx aplica cada hook transaccional a cada mutación, en orden de registro.
func (p *Pipeline) runInTx(ctx context.Context, r ports.Repos, mutations []Mutation) error {
	for _, m := range mutations {
		for _, h := range p.inTx {
			if err := h.OnMutation(ctx, r, m); err != nil {
				return fmt.Errorf("hook %s (%s #%d): %w", h.Name(), m.EntityType, m.EntityID, err)
			}
		}
	}
	return nil
}

func (p *Pipeline) runAfterCommit(ctx context.Context, mutations []Mutation) {
	if len(mutations) == 0 {
		return
	}
	for _, h := range p.afterCommit {
		if err := h.AfterCommit(ctx, mutations); err != nil {
			p.log.Warn().Err(err).Str("hook", h.Name()).Int("mutations", len(mutations)).
				Msg("hook post-commit falló; se continúa")
		}
	}
}
