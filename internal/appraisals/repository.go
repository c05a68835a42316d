package appraisals

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/curiolabs/curio/internal/learning"
	"github.com/curiolabs/curio/internal/market"
	"github.com/curiolabs/curio/internal/workflow"
	"github.com/curiolabs/curio/pkg/pagination"
	"github.com/curiolabs/curio/pkg/query"
	"github.com/curiolabs/curio/pkg/repository"
	"github.com/curiolabs/curio/pkg/storage"
)

type repo struct {
	db         *sql.DB
	rt         *workflow.Runtime
	store      storage.System
	logger     *slog.Logger
	pagination pagination.Config
	maxPayload int64

	modelName    string
	providerName string
}

// New creates an appraisal repository implementing the System interface.
// It internally constructs the workflow runtime from the provided
// dependencies.
func New(
	db *sql.DB,
	agent gaconfig.AgentConfig,
	logger *slog.Logger,
	pagination pagination.Config,
	store storage.System,
	mkt market.System,
	learn learning.System,
	maxPayload int64,
) System {
	rt := &workflow.Runtime{
		Vision:   &workflow.AgentVision{Config: agent},
		Market:   mkt,
		Learning: learn,
		Logger:   logger.With("workflow", "appraise"),
	}

	r := &repo{
		db:         db,
		rt:         rt,
		store:      store,
		logger:     logger.With("system", "appraisals"),
		pagination: pagination,
		maxPayload: maxPayload,
	}

	if agent.Model != nil {
		r.modelName = agent.Model.Name
	}
	if agent.Provider != nil {
		r.providerName = agent.Provider.Name
	}

	return r
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Appraisal], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "ItemType")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count appraisals: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAppraisal)
	if err != nil {
		return nil, fmt.Errorf("query appraisals: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Appraisal, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAppraisal)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

// Appraise validates the inbound images, runs the identification pipeline,
// persists the result, and retains the submitted payloads in blob storage.
func (r *repo) Appraise(ctx context.Context, cmd AppraiseCommand, progress workflow.ProgressFunc) (*Appraisal, error) {
	images, err := validateImages(cmd.Images, r.maxPayload)
	if err != nil {
		return nil, err
	}

	result, err := workflow.Execute(ctx, r.rt, workflow.Request{
		Images:      images,
		AskingPrice: cmd.AskingPrice,
		Progress:    progress,
	})
	if err != nil {
		return nil, fmt.Errorf("appraise: %w", err)
	}

	id := uuid.New()
	a, err := r.insert(ctx, id, result, cmd.AskingPrice, len(images))
	if err != nil {
		return nil, err
	}

	r.retainImages(ctx, id, images)

	r.logger.Info("item appraised",
		"id", a.ID,
		"name", a.Name,
		"category", a.Category,
		"confidence", a.Confidence,
	)
	return a, nil
}

// AppraiseAdditional analyzes one supplementary photo against a stored
// appraisal and persists the merged result.
func (r *repo) AppraiseAdditional(ctx context.Context, id uuid.UUID, cmd AdditionalCommand) (*Appraisal, error) {
	prior, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := validateImages([]ImageInput{cmd.Image}, r.maxPayload)
	if err != nil {
		return nil, err
	}
	image := images[0]

	merged, err := workflow.AnalyzeAdditional(ctx, r.rt, prior.Result, image)
	if err != nil {
		return nil, fmt.Errorf("appraise additional: %w", err)
	}

	resultJSON, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	updateQ := `
		UPDATE appraisals
		SET name = $1, maker = $2, confidence = $3, risk_level = $4,
			estimated_value_min = $5, estimated_value_max = $6,
			result = $7, image_count = image_count + 1, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + appraisalColumns

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Appraisal, error) {
		return repository.QueryOne(ctx, tx, updateQ, []any{
			merged.Name,
			merged.Maker,
			merged.Confidence,
			string(merged.Authentication.RiskLevel),
			merged.EstimatedValueMin,
			merged.EstimatedValueMax,
			resultJSON,
			id,
		}, scanAppraisal)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.retainImages(ctx, id, images)

	r.logger.Info("additional photo appraised",
		"id", a.ID,
		"role", image.Role,
	)
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM appraisals WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("appraisal deleted", "id", id)
	return nil
}

const appraisalColumns = `id, name, maker, category, domain, item_type, quality_tier,
			  confidence, risk_level, estimated_value_min, estimated_value_max,
			  asking_price, triage, result, image_count, model_name,
			  provider_name, appraised_at, updated_at`

func (r *repo) insert(
	ctx context.Context,
	id uuid.UUID,
	result *workflow.Result,
	askingPrice *int,
	imageCount int,
) (*Appraisal, error) {
	triageJSON, err := json.Marshal(result.Triage)
	if err != nil {
		return nil, fmt.Errorf("marshal triage: %w", err)
	}

	resultJSON, err := json.Marshal(result.Analysis)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	insertQ := `
		INSERT INTO appraisals(
			id, name, maker, category, domain, item_type, quality_tier,
			confidence, risk_level, estimated_value_min, estimated_value_max,
			asking_price, triage, result, image_count, model_name, provider_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + appraisalColumns

	insertArgs := []any{
		id,
		result.Analysis.Name,
		result.Analysis.Maker,
		string(result.Analysis.Category),
		string(result.Analysis.Domain),
		result.Analysis.ItemType,
		string(result.Analysis.QualityTier),
		result.Analysis.Confidence,
		string(result.Analysis.Authentication.RiskLevel),
		result.Analysis.EstimatedValueMin,
		result.Analysis.EstimatedValueMax,
		askingPrice,
		triageJSON,
		resultJSON,
		imageCount,
		r.modelName,
		r.providerName,
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Appraisal, error) {
		return repository.QueryOne(ctx, tx, insertQ, insertArgs, scanAppraisal)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &a, nil
}

// retainImages stores the submitted payloads in blob storage keyed by
// appraisal and image id. Retention is best-effort: a storage failure loses
// the archived photo, not the appraisal.
func (r *repo) retainImages(ctx context.Context, id uuid.UUID, images []workflow.CapturedImage) {
	if r.store == nil {
		return
	}

	for _, img := range images {
		data, contentType, err := decodeDataURI(img.DataURI)
		if err != nil {
			r.logger.Warn("skipping image retention", "image_id", img.ID, "error", err)
			continue
		}

		key := fmt.Sprintf("appraisals/%s/%s", id, img.ID)
		if err := r.store.Upload(ctx, key, bytes.NewReader(data), contentType); err != nil {
			r.logger.Warn("image retention failed", "key", key, "error", err)
		}
	}
}

func decodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", ErrInvalidImage
	}

	mime, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return nil, "", ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	return data, mime, nil
}
