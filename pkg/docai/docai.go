package docai

import (
	"ProjectKYC/internal/entity"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"google.golang.org/api/option"
)

const (
	defaultLocation       = "us"
	defaultMaxWorkers     = 4
	defaultTimeoutSeconds = 300

	extractorName        = "custom-ncb-extractor"
	extractorDescription = "Custom NCB Bank KYC Form Extractor"
)

type ProcessorInfo struct {
	ID          string `json:"id"`
	Version     string `json:"version,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type IDocAI interface {
	Initialize()
	Cleanup()
	ExtractEntities(ctx context.Context, content []byte, mimeType string) ([]entity.RawEntity, error)
	Info() ProcessorInfo
}

type docAIClient struct {
	client *documentai.DocumentProcessorClient
	pool   *workerPool
	log    *logrus.Logger

	projectID   string
	location    string
	processorID string
	versionID   string
	timeout     time.Duration
}

func New(logger *logrus.Logger) (IDocAI, error) {
	projectID := os.Getenv("PROJECT_ID")
	if projectID == "" {
		return nil, errors.New("PROJECT_ID is required")
	}

	processorID := os.Getenv("CUSTOM_EXTRACTOR_ID")
	if processorID == "" {
		return nil, errors.New("CUSTOM_EXTRACTOR_ID is required")
	}

	location := os.Getenv("LOCATION")
	if location == "" {
		location = defaultLocation
	}

	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", location)
	client, err := documentai.NewDocumentProcessorClient(
		context.Background(),
		option.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create document AI client: %w", err)
	}

	logger.WithField("location", location).Info("Initialized document AI client")

	return &docAIClient{
		client:      client,
		pool:        newWorkerPool(envInt("DOCAI_MAX_WORKERS", defaultMaxWorkers), logger),
		log:         logger,
		projectID:   projectID,
		location:    location,
		processorID: processorID,
		versionID:   os.Getenv("CUSTOM_EXTRACTOR_VERSION_ID"),
		timeout:     time.Duration(envInt("DOCAI_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
	}, nil
}

func (c *docAIClient) Initialize() {
	c.pool.Initialize()
}

func (c *docAIClient) Cleanup() {
	c.pool.Cleanup()
}

func (c *docAIClient) Info() ProcessorInfo {
	return ProcessorInfo{
		ID:          c.processorID,
		Version:     c.versionID,
		Name:        extractorName,
		Description: extractorDescription,
	}
}

// ExtractEntities runs one synchronous processor call for one document
// on the worker pool and flattens the response into raw entities. The
// call is bounded by a hard deadline; an expired call surfaces as an
// error, never as partial results.
func (c *docAIClient) ExtractEntities(ctx context.Context, content []byte, mimeType string) ([]entity.RawEntity, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	value, err := c.pool.Submit(callCtx, func() (interface{}, error) {
		return c.processDocument(callCtx, content, mimeType)
	})
	if err != nil {
		return nil, err
	}

	return rawEntitiesFrom(value.(*documentaipb.Document)), nil
}

// processDocument is the blocking call that runs on a pool worker.
// A configured processor version is preferred; otherwise the request
// addresses the processor's default deployed version.
func (c *docAIClient) processDocument(ctx context.Context, content []byte, mimeType string) (*documentaipb.Document, error) {
	req := &documentaipb.ProcessRequest{
		Name: c.processorName(),
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  content,
				MimeType: mimeType,
			},
		},
	}

	resp, err := c.client.ProcessDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	return resp.GetDocument(), nil
}

func (c *docAIClient) processorName() string {
	name := fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.projectID, c.location, c.processorID)
	if c.versionID != "" {
		name = fmt.Sprintf("%s/processorVersions/%s", name, c.versionID)
	}
	return name
}

func (c *docAIClient) Close() error {
	return c.client.Close()
}

func rawEntitiesFrom(doc *documentaipb.Document) []entity.RawEntity {
	docEntities := doc.GetEntities()
	out := make([]entity.RawEntity, 0, len(docEntities))

	for _, e := range docEntities {
		raw := entity.RawEntity{
			Type:       e.GetType(),
			Value:      e.GetMentionText(),
			Confidence: float64(e.GetConfidence()),
		}

		if refs := e.GetPageAnchor().GetPageRefs(); len(refs) > 0 {
			for _, v := range refs[0].GetBoundingPoly().GetNormalizedVertices() {
				raw.Vertices = append(raw.Vertices, entity.NormalizedVertex{
					X: float64(v.GetX()),
					Y: float64(v.GetY()),
				})
			}
		}

		out = append(out, raw)
	}

	return out
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
