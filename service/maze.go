package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/codeprimate/webmaze-api/domain"
	"github.com/codeprimate/webmaze-api/mazegen"
	"github.com/codeprimate/webmaze-api/service/i"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxDimension = mazegen.MaxDimension
	defaultAttempts     = 5
	defaultMaxAttempts  = 10
	defaultBatchLimit   = 20
	defaultBoardKey     = "mazes:hardest"
	defaultBoardSize    = 100
	defaultCellSize     = 20
)

var (
	ErrUnknownGenerationMode = errors.New("unknown generation mode")
	ErrDimensionTooLarge     = errors.New("maze dimensions exceed the service limit")
	ErrBatchTooLarge         = errors.New("batch size exceeds the service limit")
	ErrEmptyBatch            = errors.New("batch must contain at least one maze")
)

// MazeOptions tunes the operational limits of the maze service. Zero
// fields fall back to defaults.
type MazeOptions struct {
	MaxDimension int    // upper bound on requested width and height
	MaxAttempts  int    // upper bound on optimization attempts per maze
	BatchLimit   int    // upper bound on mazes per batch request
	BoardKey     string // redis key of the hardest-maze board
	BoardSize    int64  // members kept on the board after pruning
}

// MazeManager generates mazes, persists them, and maintains the
// hardest-maze board. Generation itself never fails once the request
// validates; persistence and board failures are logged and degrade the
// response rather than failing it.
type MazeManager struct {
	generator i.MazeGenerator
	mazeRepo  i.MazeRepo
	board     i.SortedBoard
	logger    mazegen.Logger
	opts      *MazeOptions
}

// NewMazeManager creates a MazeManager with the given dependencies.
func NewMazeManager(generator i.MazeGenerator, mazeRepo i.MazeRepo, board i.SortedBoard, logger mazegen.Logger, opts *MazeOptions) (i.MazeManager, error) {
	if generator == nil || mazeRepo == nil || board == nil {
		return nil, errors.New("maze manager requires a generator, a repository, and a board")
	}

	if opts == nil {
		opts = &MazeOptions{}
	}
	if opts.MaxDimension <= 0 || opts.MaxDimension > mazegen.MaxDimension {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.BatchLimit <= 0 {
		opts.BatchLimit = defaultBatchLimit
	}
	if opts.BoardKey == "" {
		opts.BoardKey = defaultBoardKey
	}
	if opts.BoardSize <= 0 {
		opts.BoardSize = defaultBoardSize
	}
	if logger == nil {
		logger = mazegen.NopLogger{}
	}

	return &MazeManager{
		generator: generator,
		mazeRepo:  mazeRepo,
		board:     board,
		logger:    logger,
		opts:      opts,
	}, nil
}

// CreateMaze generates one maze in the requested mode, persists it, and
// ranks it on the hardest-maze board.
func (m *MazeManager) CreateMaze(ctx context.Context, req *i.CreateMazeRequest) (*dmn.Maze, error) {
	normalized, err := m.normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	m.logger.Info(fmt.Sprintf("Generating maze: Mode=%s Size=%dx%d Seed=%d", normalized.Mode, normalized.Width, normalized.Height, normalized.Seed))
	generated, err := m.generate(normalized)
	if err != nil {
		m.logger.Error(fmt.Sprintf("Generating maze: %s", err))
		return nil, err
	}

	record, err := dmn.NewMaze(dmn.MazeConfig{
		ID:        uuid.New(),
		OwnerID:   normalized.OwnerID,
		Generated: generated,
	})
	if err != nil {
		m.logger.Error(fmt.Sprintf("Packing generated maze: %s", err))
		return nil, err
	}

	// The response already carries the full maze, so storage and board
	// trouble degrades the extras instead of failing the request.
	if err := m.mazeRepo.Save(record); err != nil {
		m.logger.Warning(fmt.Sprintf("Persisting maze %s: %s", record.ID, err))
	} else {
		m.rankOnBoard(ctx, record)
	}

	m.logger.Info(fmt.Sprintf("Maze created: ID=%s Score=%.1f PathLength=%d", record.ID, record.Difficulty.Score, len(record.Solution)))
	return record, nil
}

// CreateBatch generates count mazes concurrently on seeds derived from
// the request's seed. Each maze is persisted and ranked exactly as a
// single create would be; order in the result follows the seed order.
func (m *MazeManager) CreateBatch(ctx context.Context, req *i.CreateMazeRequest, count int) ([]*dmn.Maze, error) {
	if count <= 0 {
		return nil, ErrEmptyBatch
	}
	if count > m.opts.BatchLimit {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, count, m.opts.BatchLimit)
	}

	normalized, err := m.normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	m.logger.Info(fmt.Sprintf("Generating maze batch: Count=%d Mode=%s BaseSeed=%d", count, normalized.Mode, normalized.Seed))

	// Each maze owns its generation state, so the batch is generated
	// concurrently on derived seeds.
	mazes := make([]*dmn.Maze, count)
	g, gctx := errgroup.WithContext(ctx)
	for idx := 0; idx < count; idx++ {
		idx := idx
		trial := normalized
		trial.Seed = normalized.Seed + int64(idx)
		g.Go(func() error {
			record, err := m.CreateMaze(gctx, &trial)
			if err != nil {
				return err
			}
			mazes[idx] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mazes, nil
}

// MazeByID retrieves a stored maze by its unique ID.
func (m *MazeManager) MazeByID(id uuid.UUID) (*dmn.Maze, error) {
	return m.mazeRepo.ByID(id)
}

// RecentMazes retrieves up to limit stored mazes, newest first.
func (m *MazeManager) RecentMazes(limit int) ([]*dmn.Maze, error) {
	if limit <= 0 || limit > m.opts.BatchLimit {
		limit = m.opts.BatchLimit
	}
	return m.mazeRepo.Recent(limit)
}

// HardestMazes joins the top of the difficulty board with the stored
// records, hardest first. Board entries whose record has disappeared
// are skipped.
func (m *MazeManager) HardestMazes(ctx context.Context, limit int) ([]*dmn.Maze, error) {
	if limit <= 0 || int64(limit) > m.opts.BoardSize {
		limit = int(m.opts.BoardSize)
	}

	tops, err := m.board.Tops(ctx, m.opts.BoardKey, int64(limit))
	if err != nil {
		m.logger.Error(fmt.Sprintf("Reading hardest-maze board: %s", err))
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(tops))
	for _, entry := range tops {
		id, err := uuid.Parse(entry.Member)
		if err != nil {
			m.logger.Warning(fmt.Sprintf("Non-UUID member on board: %s", entry.Member))
			continue
		}
		ids = append(ids, id)
	}

	return m.mazeRepo.ByIDs(ids)
}

// normalizeRequest applies defaults and operational limits. The
// returned value is a copy; the caller's request is never mutated.
func (m *MazeManager) normalizeRequest(req *i.CreateMazeRequest) (i.CreateMazeRequest, error) {
	if req == nil {
		return i.CreateMazeRequest{}, errors.New("nil maze request")
	}

	normalized := *req
	if normalized.Mode == "" {
		normalized.Mode = i.ModePlain
	}
	switch normalized.Mode {
	case i.ModePlain, i.ModeEnhanced, i.ModeOptimized:
	default:
		return i.CreateMazeRequest{}, fmt.Errorf("%w: %q", ErrUnknownGenerationMode, normalized.Mode)
	}

	if normalized.Width > m.opts.MaxDimension || normalized.Height > m.opts.MaxDimension {
		return i.CreateMazeRequest{}, fmt.Errorf("%w: %dx%d > %d", ErrDimensionTooLarge, normalized.Width, normalized.Height, m.opts.MaxDimension)
	}

	if normalized.CellSize <= 0 {
		normalized.CellSize = defaultCellSize
	}
	if normalized.Seed == 0 {
		normalized.Seed = time.Now().UnixNano()
	}
	if normalized.Attempts <= 0 {
		normalized.Attempts = defaultAttempts
	}
	if normalized.Attempts > m.opts.MaxAttempts {
		normalized.Attempts = m.opts.MaxAttempts
	}

	return normalized, nil
}

// generate dispatches to the generator for the requested mode.
func (m *MazeManager) generate(req i.CreateMazeRequest) (*mazegen.Maze, error) {
	switch req.Mode {
	case i.ModeEnhanced:
		params := mazegen.DefaultEnhanceParams()
		if req.Params != nil {
			params = *req.Params
		}
		return m.generator.Enhanced(req.Width, req.Height, req.CellSize, req.Seed, params)
	case i.ModeOptimized:
		return m.generator.Optimized(req.Width, req.Height, req.CellSize, req.Seed, req.Attempts)
	default:
		return m.generator.Plain(req.Width, req.Height, req.CellSize, req.Seed)
	}
}

// rankOnBoard submits the maze's difficulty to the hardest-maze board
// and trims the board back to capacity when it overflows.
func (m *MazeManager) rankOnBoard(ctx context.Context, record *dmn.Maze) {
	if err := m.board.Rank(ctx, m.opts.BoardKey, record.Difficulty.Score, record.ID.String()); err != nil {
		m.logger.Warning(fmt.Sprintf("Ranking maze %s on board: %s", record.ID, err))
		return
	}

	if m.board.Count(ctx, m.opts.BoardKey) > m.opts.BoardSize {
		if _, err := m.board.Prune(ctx, m.opts.BoardKey, m.opts.BoardSize); err != nil {
			m.logger.Warning(fmt.Sprintf("Pruning hardest-maze board: %s", err))
		}
	}
}
