// cutlist — Panel Cut-List Material Calculator
//
// A batch command line tool that computes material consumption for a
// cut list of panel pieces: per-piece and aggregate areas, stock sheets
// needed per material, yield, grain orientation checks and edge-banding
// totals. Inputs are CSV or Excel tables; results are printed as text
// tables and can be exported to XLSX, a PDF report and QR piece labels.
//
// Build:
//   go build -o cutlist ./cmd/cutlist
//
// Typical use:
//   cutlist -pieces piezas.csv -bands cantos.csv -xlsx consumo.xlsx
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/panelworks/cutlist/internal/config"
	"github.com/panelworks/cutlist/internal/export"
	"github.com/panelworks/cutlist/internal/importer"
	"github.com/panelworks/cutlist/internal/model"
	"github.com/panelworks/cutlist/internal/project"
)

// options collects the parsed command line.
type options struct {
	piecesPath  string
	formatsPath string
	bandsPath   string
	sessionPath string
	savePath    string
	configPath  string
	xlsxPath    string
	pdfPath     string
	labelsPath  string
	backupPath  string
	restorePath string
}

func main() {
	var opts options
	flag.StringVar(&opts.piecesPath, "pieces", "", "piece list file (CSV or XLSX)")
	flag.StringVar(&opts.formatsPath, "formats", "", "stock format file appended to the catalog (CSV or XLSX)")
	flag.StringVar(&opts.bandsPath, "bands", "", "edge-band list file (CSV or XLSX)")
	flag.StringVar(&opts.sessionPath, "session", "", "load a saved session instead of input files")
	flag.StringVar(&opts.savePath, "save", "", "save the loaded inputs as a session file")
	flag.StringVar(&opts.configPath, "config", "", "config file (default: ./cutlist.yaml if present)")
	flag.StringVar(&opts.xlsxPath, "xlsx", "", "write the report as a multi-sheet XLSX workbook")
	flag.StringVar(&opts.pdfPath, "pdf", "", "write the report as a printable PDF")
	flag.StringVar(&opts.labelsPath, "labels", "", "write QR piece labels as a PDF")
	flag.StringVar(&opts.backupPath, "backup", "", "export the catalog as a versioned backup file")
	flag.StringVar(&opts.restorePath, "restore", "", "replace the catalog from a backup file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, opts); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, opts options) error {
	if opts.piecesPath != "" && opts.sessionPath != "" {
		return fmt.Errorf("-pieces and -session are mutually exclusive")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.restorePath != "" {
		if err := restoreCatalog(logger, cfg, opts.restorePath); err != nil {
			return err
		}
	}
	if opts.backupPath != "" {
		if err := backupCatalog(logger, cfg, opts.backupPath); err != nil {
			return err
		}
	}

	if opts.piecesPath == "" && opts.sessionPath == "" {
		if opts.backupPath != "" || opts.restorePath != "" {
			return nil
		}
		return fmt.Errorf("nothing to do: pass -pieces or -session (see -h)")
	}

	session, err := loadInputs(logger, cfg, opts.piecesPath, opts.formatsPath, opts.bandsPath, opts.sessionPath)
	if err != nil {
		return err
	}

	if opts.savePath != "" {
		if err := project.SaveSession(opts.savePath, session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		logger.Info("session saved", "path", opts.savePath)
	}

	report := model.BuildReport(session.Pieces, session.Bands, &session.Catalog)
	printReport(os.Stdout, report)

	for _, ep := range model.GrainViolations(report.Pieces) {
		logger.Warn("grain violation", "piece", ep.Name, "check", ep.GrainCheck.String())
	}

	if cfg.ExportDir != "" && (opts.xlsxPath != "" || opts.pdfPath != "" || opts.labelsPath != "") {
		if err := os.MkdirAll(cfg.ExportDir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	if opts.xlsxPath != "" {
		path := resolveOutputPath(cfg.ExportDir, opts.xlsxPath)
		if err := export.ExportXLSX(path, report); err != nil {
			return err
		}
		logger.Info("workbook written", "path", path)
	}
	if opts.pdfPath != "" {
		path := resolveOutputPath(cfg.ExportDir, opts.pdfPath)
		if err := export.ExportPDF(path, report); err != nil {
			return err
		}
		logger.Info("report written", "path", path)
	}
	if opts.labelsPath != "" {
		path := resolveOutputPath(cfg.ExportDir, opts.labelsPath)
		if err := export.ExportLabels(path, report.Pieces); err != nil {
			return err
		}
		logger.Info("labels written", "path", path)
	}
	return nil
}

// resolveOutputPath places relative export files under the configured
// export directory. Absolute paths are taken as given.
func resolveOutputPath(exportDir, path string) string {
	if path == "" || exportDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(exportDir, path)
}

// loadCatalog resolves the active catalog file, preferring the
// configured path over the per-user default.
func loadCatalog(cfg config.Config) (model.Catalog, string, error) {
	if cfg.CatalogPath != "" {
		cat, err := project.LoadCatalog(cfg.CatalogPath)
		return cat, cfg.CatalogPath, err
	}
	return project.LoadOrCreateCatalog()
}

func backupCatalog(logger *slog.Logger, cfg config.Config, backupPath string) error {
	cat, path, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := project.ExportAllData(backupPath, cat); err != nil {
		return err
	}
	logger.Info("backup written", "path", backupPath, "catalog", path, "entries", len(cat.Entries))
	return nil
}

func restoreCatalog(logger *slog.Logger, cfg config.Config, restorePath string) error {
	backup, err := project.ImportAllData(restorePath)
	if err != nil {
		return err
	}
	path := cfg.CatalogPath
	if path == "" {
		path = project.DefaultCatalogPath()
	}
	if err := project.SaveCatalog(path, backup.Catalog); err != nil {
		return fmt.Errorf("failed to write restored catalog: %w", err)
	}
	logger.Info("catalog restored", "path", path, "entries", len(backup.Catalog.Entries), "created_at", backup.CreatedAt)
	return nil
}

// loadInputs materializes the session either from a saved session file
// or from the input tables plus the persisted catalog.
func loadInputs(logger *slog.Logger, cfg config.Config, piecesPath, formatsPath, bandsPath, sessionPath string) (model.Session, error) {
	if sessionPath != "" {
		session, err := project.LoadSession(sessionPath)
		if err != nil {
			return model.Session{}, err
		}
		logger.Debug("session loaded", "path", sessionPath, "pieces", len(session.Pieces))
		return session, nil
	}

	session := model.NewSession()

	catalog, catalogPath, err := loadCatalog(cfg)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("catalog loaded", "path", catalogPath, "entries", len(catalog.Entries))
	session.Catalog = catalog

	// Entries from a formats file are appended: with duplicate keys the
	// later file entry wins the lookup.
	if formatsPath != "" {
		fi := importer.ImportFormats(formatsPath, importer.FormatAliases().Merge(cfg.Aliases.Formats))
		logImportIssues(logger, "formats", fi.Errors, fi.Warnings)
		if len(fi.Entries) == 0 && len(fi.Errors) > 0 {
			return model.Session{}, fmt.Errorf("no usable rows in %s", formatsPath)
		}
		for _, e := range fi.Entries {
			session.Catalog.Add(e)
		}
	}

	pi := importer.ImportPieces(piecesPath, importer.PieceAliases().Merge(cfg.Aliases.Pieces))
	logImportIssues(logger, "pieces", pi.Errors, pi.Warnings)
	if len(pi.Pieces) == 0 && len(pi.Errors) > 0 {
		return model.Session{}, fmt.Errorf("no usable rows in %s", piecesPath)
	}
	session.Pieces = pi.Pieces

	if bandsPath != "" {
		bi := importer.ImportEdgeBands(bandsPath, importer.BandAliases().Merge(cfg.Aliases.Bands))
		logImportIssues(logger, "bands", bi.Errors, bi.Warnings)
		if len(bi.Bands) == 0 && len(bi.Errors) > 0 {
			return model.Session{}, fmt.Errorf("no usable rows in %s", bandsPath)
		}
		session.Bands = bi.Bands
	}

	return session, nil
}

func logImportIssues(logger *slog.Logger, table string, errors, warnings []string) {
	for _, w := range warnings {
		logger.Debug("import warning", "table", table, "detail", w)
	}
	for _, e := range errors {
		logger.Warn("row rejected", "table", table, "detail", e)
	}
}

// printReport renders the three outputs as aligned text tables.
func printReport(out io.Writer, report model.Report) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "PIEZAS")
	fmt.Fprintln(w, "Nombre\tMaterial\tEspesor\tLargo\tAncho\tCant\tVeta\tFormato\tÁrea m²\tControl veta")
	for _, p := range report.Pieces {
		format := "-"
		if p.FormatResolved {
			format = fmt.Sprintf("%.0fx%.0f", p.ResolvedLengthMM, p.ResolvedWidthMM)
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.0f\t%.0f\t%d\t%s\t%s\t%.4f\t%s\n",
			p.Name, p.Material, p.ThicknessMM, p.LengthMM, p.WidthMM,
			p.Quantity, p.Grain, format, p.AreaM2, p.GrainCheck)
	}

	fmt.Fprintln(w, "\nRESUMEN MATERIALES")
	fmt.Fprintln(w, "Material\tEspesor\tÁrea placa m²\tÁrea total m²\tPlacas\tRendimiento")
	for _, r := range report.Materials {
		sheetArea := "-"
		if r.SheetAreaM2 > 0 {
			sheetArea = fmt.Sprintf("%.4f", r.SheetAreaM2)
		}
		yield := "-"
		if r.YieldPercent != nil {
			yield = fmt.Sprintf("%.1f%%", *r.YieldPercent)
		}
		fmt.Fprintf(w, "%s\t%.1f\t%s\t%.4f\t%d\t%s\n",
			r.Material, r.ThicknessMM, sheetArea, r.TotalAreaM2, r.SheetsNeeded, yield)
	}

	if len(report.Bands) > 0 {
		fmt.Fprintln(w, "\nCANTOS")
		fmt.Fprintln(w, "Tipo\tMetros lineales")
		for _, b := range report.Bands {
			fmt.Fprintf(w, "%s\t%.2f\n", b.Type, b.TotalLinearMeters)
		}
	}

	w.Flush()
}
