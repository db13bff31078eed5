// Package statement is the entry point for turning an uploaded bank
// statement into normalized transactions.
package statement

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bandabooks/stmtparse/internal/banks"
	"github.com/bandabooks/stmtparse/internal/model"
	"github.com/bandabooks/stmtparse/internal/normalize"
	"github.com/bandabooks/stmtparse/internal/reader"
)

// Diagnostics recorded in ParseResult.Errors.
const (
	MsgEmptyFile       = "Empty or invalid file"
	MsgGenericFallback = "Bank format not recognized, using generic parser"
)

// Service parses statement files. It holds no per-call state and is safe
// for concurrent use.
type Service struct {
	registry   *banks.Registry
	generic    banks.Generic
	normalizer *normalize.Normalizer
	log        *logrus.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRegistry replaces the built-in bank parsers.
func WithRegistry(r *banks.Registry) Option {
	return func(s *Service) { s.registry = r }
}

// WithNormalizer sets the date policy used by every parser.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(s *Service) { s.normalizer = n }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service with the default registry and normalizer.
func NewService(opts ...Option) *Service {
	s := &Service{
		registry:   banks.DefaultRegistry(),
		normalizer: normalize.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logrus.New()
		s.log.SetOutput(io.Discard)
	}
	return s
}

// ParseStatement reads, identifies and parses a statement. It never fails:
// every problem is reported in the result's Errors, and whatever could be
// extracted is still returned.
func (s *Service) ParseStatement(data []byte, filename string) (result *model.ParseResult) {
	id := uuid.New()
	result = newResult(id)
	log := s.log.WithFields(logrus.Fields{"file": filename, "statement_id": id.String()})

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("statement parse failed")
			result = newResult(id)
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to parse statement: %v", r))
		}
	}()

	grid, err := reader.Read(data, filename)
	if err != nil {
		log.WithError(err).Warn("reading statement file")
		result.Errors = append(result.Errors, readErrorMessage(err))
		return result
	}
	if len(grid) == 0 {
		log.Warn("statement file has no rows")
		result.Errors = append(result.Errors, MsgEmptyFile)
		return result
	}

	var ex banks.Extraction
	if p := s.registry.Identify(grid.Header(), grid.FirstDataRow()); p != nil {
		result.BankName = p.Name()
		ex = p.Parse(grid, s.normalizer)
	} else {
		log.WithField("headers", strings.Join(grid.Header(), ",")).Info("bank not recognized, using generic parser")
		result.BankName = model.BankGeneric
		result.Errors = append(result.Errors, MsgGenericFallback)
		ex, err = s.generic.Parse(grid, s.normalizer)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	if ex.Transactions != nil {
		result.Transactions = ex.Transactions
	}
	result.Metadata = CalculateMetadata(result.Transactions)
	result.Metadata.SkippedRows = ex.Skipped

	log.WithFields(logrus.Fields{
		"bank":         result.BankName,
		"transactions": len(result.Transactions),
		"skipped":      ex.Skipped,
	}).Debug("statement parsed")
	return result
}

// ValidateStatementFile parses a statement and accepts it only when it
// produced transactions without any errors.
func (s *Service) ValidateStatementFile(data []byte, filename string) model.ValidationResult {
	res := s.ParseStatement(data, filename)
	v := model.ValidationResult{
		IsValid:          len(res.Errors) == 0 && len(res.Transactions) > 0,
		Errors:           res.Errors,
		TransactionCount: len(res.Transactions),
	}
	if res.BankName != model.BankUnknown {
		v.BankDetected = res.BankName
	}
	return v
}

// SupportedBanks lists the recognized banks in identification order.
func (s *Service) SupportedBanks() []string {
	return s.registry.Names()
}

func newResult(id uuid.UUID) *model.ParseResult {
	return &model.ParseResult{
		StatementID:  id,
		BankName:     model.BankUnknown,
		Transactions: []model.StandardizedTransaction{},
		Metadata:     CalculateMetadata(nil),
		Errors:       []string{},
	}
}

func readErrorMessage(err error) string {
	var ufe *reader.UnsupportedFormatError
	if errors.As(err, &ufe) {
		ext := ufe.Ext
		if ext == "" {
			ext = "(none)"
		}
		return fmt.Sprintf("Unsupported file format: %s. Supported formats: %s",
			ext, strings.Join(reader.SupportedExtensions(), ", "))
	}
	return fmt.Sprintf("Failed to read file: %v", err)
}
