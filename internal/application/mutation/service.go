package mutation

import (
	"context"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/ports"
)

// Service es el único punto por el que pasan las escrituras de entidades rastreadas:
// abre la transacción, ejecuta el caso de uso, corre los hooks transaccionales,
// hace Commit y luego corre los hooks post-commit.
type Service struct {
	txRunner ports.TxRunner
	pipeline *Pipeline
	now      func() time.Time
}

// NewService construye el servicio de mutaciones.
func NewService(txRunner ports.TxRunner, pipeline *Pipeline) *Service {
	return &Service{txRunner: txRunner, pipeline: pipeline, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Execute corre fn en una transacción. Si fn o algún hook transaccional falla, nada se persiste.
func (s *Service) Execute(
	ctx context.Context,
	actor Actor,
	fn func(ctx context.Context, r ports.Repos, rec *Recorder) error,
) error {
	var committed []Mutation
	err := s.txRunner.Run(ctx, func(ctx context.Context, r ports.Repos) error {
		rec := newRecorder(actor, s.now())
		if err := fn(ctx, r, rec); err != nil {
			return err
		}
		if err := s.pipeline.runInTx(ctx, r, rec.mutations); err != nil {
			return err
		}
		committed = rec.mutations
		return nil
	})
	if err != nil {
		return err
	}
	s.pipeline.runAfterCommit(ctx, committed)
	return nil
}
