package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"retail-storage/feature/order/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderSource provides the order snapshot reports are built from.
type OrderSource interface {
	ListAll(ctx context.Context) []models.OrderRecord
}

// FileShare persists and retrieves report artifacts.
type FileShare interface {
	Write(ctx context.Context, content, name string) bool
	Read(ctx context.Context, name string) (string, bool)
}

// Result is a generated report artifact.
type Result struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

// Service implements the report workflow: snapshot the orders, materialize
// the CSV artifact, persist it on the file share.
type Service struct {
	orders OrderSource
	share  FileShare
	logger *zap.Logger

	// now is swappable for deterministic tests.
	now func() time.Time
}

// NewService creates a new report service.
func NewService(orders OrderSource, share FileShare, logger *zap.Logger) *Service {
	return &Service{orders: orders, share: share, logger: logger, now: time.Now}
}

// Generate builds a report over the current order snapshot and writes it to
// the file share. The artifact is fully materialized before the single write.
func (s *Service) Generate(ctx context.Context, reportType string) (Result, bool) {
	orders := s.orders.ListAll(ctx)
	generatedAt := s.now().UTC()

	content := BuildReport(reportType, orders, generatedAt)
	name := fileName(reportType, generatedAt)

	if !s.share.Write(ctx, content, name) {
		s.logger.Error("Report generation failed", zap.String("file", name))
		return Result{}, false
	}

	s.logger.Info("Report generated", zap.String("file", name),
		zap.Int("orders", len(orders)))
	return Result{FileName: name, Content: content}, true
}

// Download retrieves a previously generated report verbatim.
func (s *Service) Download(ctx context.Context, name string) (string, bool) {
	return s.share.Read(ctx, name)
}

// fileName derives the artifact name from the report type and timestamp. The
// random suffix keeps two reports of the same type generated within the same
// second from colliding.
func fileName(reportType string, generatedAt time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s_Report_%s_%s.csv",
		reportType, generatedAt.Format("20060102_150405"), suffix)
}

// BuildReport materializes the line-oriented report text: a title block, one
// comma-separated row per order, and a summary with the order count and total
// revenue. For a fixed snapshot and timestamp the output is deterministic.
func BuildReport(reportType string, orders []models.OrderRecord, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Retail %s Report\n", reportType)
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	b.WriteString("Order ID,Customer,Product,Quantity,Price,Date,Status\n")

	var revenue float64
	for _, o := range orders {
		// FormatFloat with 'f' keeps large prices in plain decimal notation
		// where %g would switch to scientific.
		fmt.Fprintf(&b, "%s,%s,%s,%d,%s,%s,%s\n",
			o.OrderID, o.CustomerName, o.ProductName, o.Quantity,
			strconv.FormatFloat(o.Price, 'f', -1, 64),
			o.OrderDate.UTC().Format("2006-01-02 15:04:05"), o.Status)
		revenue += o.Total()
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total Orders: %d\n", len(orders))
	fmt.Fprintf(&b, "Total Revenue: $%.2f\n", revenue)

	return b.String()
}
