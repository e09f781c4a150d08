package parser

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/erraggy/routediff"
	"github.com/erraggy/routediff/node"
	"github.com/erraggy/routediff/oaserrors"
)

// DefaultMaxFileSize is the input size limit applied when none is configured.
const DefaultMaxFileSize int64 = 100 * 1024 * 1024

// Version fields, in lookup order.
const (
	FieldOpenAPI = "openapi"
	FieldSwagger = "swagger"
)

// ParseResult is a loaded document and where it came from.
//
// Callers should treat Document as read-only; the differ and the MCP cache
// share parsed trees.
type ParseResult struct {
	// SourcePath is the file path or URL the document was read from. Input
	// that did not come from a path is named after the method that loaded it,
	// such as "ParseBytes.yaml".
	SourcePath string
	// SourceFormat is the detected serialization format.
	SourceFormat SourceFormat
	// Version is the value of the "openapi" (or "swagger") field, when it is
	// a string.
	Version string
	// Document is the decoded document with its key order preserved.
	Document *node.Node
	// LoadTime is the time taken to read the source.
	LoadTime time.Duration
	// SourceSize is the size of the source in bytes.
	SourceSize int64
}

// Parser loads documents. The zero value is ready to use.
type Parser struct {
	// Logger receives debug events. Nil discards them.
	Logger Logger
	// MaxFileSize caps the input size in bytes. Zero means DefaultMaxFileSize.
	MaxFileSize int64
	// UserAgent is sent when fetching URLs. Empty means routediff.UserAgent().
	UserAgent string
	// HTTPClient fetches URLs. Nil means a client with a 30 second timeout.
	HTTPClient *http.Client
}

// New creates a Parser with default settings.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) log() Logger { return orNop(p.Logger) }

func (p *Parser) maxSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// Parse loads a document from a local file or an http(s) URL.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var (
		data   []byte
		format SourceFormat
		err    error
	)

	start := time.Now()
	if isURL(specPath) {
		var contentType string
		data, contentType, err = p.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
	} else {
		data, err = p.readFile(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(start)

	res, err := p.parse(data, specPath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader loads a document from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	limit := p.maxSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{ResourceType: "file_size", Limit: limit, Actual: int64(len(data))}
	}
	loadTime := time.Since(start)

	res, err := p.parseNamed(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes loads a document from data.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if limit := p.maxSize(); int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{ResourceType: "file_size", Limit: limit, Actual: int64(len(data))}
	}
	return p.parseNamed(data, "ParseBytes")
}

func (p *Parser) parseNamed(data []byte, method string) (*ParseResult, error) {
	res, err := p.parse(data, method)
	if err != nil {
		return nil, err
	}
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = method + ".json"
	} else {
		res.SourcePath = method + ".yaml"
	}
	return res, nil
}

func (p *Parser) parse(data []byte, source string) (*ParseResult, error) {
	doc, err := node.Unmarshal(data)
	if err != nil {
		return nil, newParseError(source, err)
	}

	res := &ParseResult{
		SourceFormat: detectFormatFromContent(data),
		Document:     doc,
		SourceSize:   int64(len(data)),
	}
	res.Version, _ = DocumentVersion(doc)

	p.log().Debug("parsed document",
		"source", source,
		"format", string(res.SourceFormat),
		"version", res.Version,
		"size", FormatBytes(res.SourceSize),
	)
	return res, nil
}

// DocumentVersion returns the "openapi" field of doc, falling back to
// "swagger" for OpenAPI 2.0 documents. ok is false when neither is a string.
func DocumentVersion(doc *node.Node) (version string, ok bool) {
	if v, ok := doc.Get(FieldOpenAPI).AsString(); ok {
		return v, true
	}
	if doc.Has(FieldOpenAPI) {
		return "", false
	}
	return doc.Get(FieldSwagger).AsString()
}

func (p *Parser) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	if limit := p.maxSize(); info.Size() > limit {
		return nil, &oaserrors.ResourceLimitError{ResourceType: "file_size", Limit: limit, Actual: info.Size()}
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is caller input
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	return data, nil
}

// fetchURL fetches content from a URL and returns the bytes and Content-Type header
func (p *Parser) fetchURL(rawURL string) ([]byte, string, error) {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to create request: %w", err)
	}
	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = routediff.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	p.log().Debug("fetching document", "url", rawURL)
	resp, err := client.Do(req) //nolint:gosec // URL is caller input
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("parser: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	limit := p.maxSize()
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to read response body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, "", &oaserrors.ResourceLimitError{ResourceType: "file_size", Limit: limit, Actual: int64(len(data))}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

func newParseError(source string, err error) *oaserrors.ParseError {
	pe := &oaserrors.ParseError{
		Path:    source,
		Message: "failed to parse YAML/JSON",
		Cause:   err,
	}
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}
