package mcpserver

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/xmazu/envdoc/internal/config"
	"github.com/xmazu/envdoc/internal/docgen"
	"github.com/xmazu/envdoc/internal/envdoc"
	"github.com/xmazu/envdoc/internal/render"
	"github.com/xmazu/envdoc/internal/scanner"
	"github.com/xmazu/envdoc/internal/workspace"
)

type generateArgs struct {
	File    string `json:"file" jsonschema:"env file to document, relative to workdir (default: configured input, usually .env)"`
	Workdir string `json:"workdir" jsonschema:"directory the file is resolved against (default: current)"`
	Format  string `json:"format" jsonschema:"markdown (default) or html"`
}

type listArgs struct {
	Workdir string `json:"workdir" jsonschema:"directory inside the workspace to list (default: current)"`
}

type server struct {
	logger *log.Logger
}

func Run(ctx context.Context, version string, logger *log.Logger) error {
	s := &server{logger: logger}

	srv := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "envdoc",
		Version: version,
	}, nil)

	mcpsdk.AddTool(srv, &mcpsdk.Tool{
		Name:        "generate_env_docs",
		Description: "Generate the documentation table for an annotated .env file. Each variable becomes one row with Key, Responsible, Type, Secret, Policy, Default value, Description and Docs columns, filled from '# [@responsible=...]', '# [@type=...]', '# [@secret=...]', '# [@policy=...]', '# [@docs=...]' and '# free text' comments above the variable. Returns the document text; nothing is written to disk.",
	}, s.generateDocs)

	mcpsdk.AddTool(srv, &mcpsdk.Tool{
		Name:        "list_env_files",
		Description: "List the .env files (including templates such as .env.example) discovered in the workspace containing workdir. Honors .envdoc.yaml include/exclude globs and skips directories ignored by .gitignore. Returns paths relative to the workspace root.",
	}, s.listEnvFiles)

	return srv.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *server) generateDocs(ctx context.Context, req *mcpsdk.CallToolRequest, args generateArgs) (*mcpsdk.CallToolResult, any, error) {
	workdir := resolveWorkdir(args.Workdir)

	cfg, err := config.Load(workdir)
	if err != nil {
		return errorResult(err), nil, nil
	}

	file := args.File
	if file == "" {
		file = cfg.Input
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(workdir, file)
	}

	formatName := args.Format
	if formatName == "" {
		formatName = cfg.Format
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return errorResult(err), nil, nil
	}

	var buf bytes.Buffer
	res, err := docgen.Write(&buf, format, "Environment variables", []docgen.Source{{Path: file}},
		envdoc.WithLogger(s.logger))
	if err != nil {
		return errorResult(err), nil, nil
	}
	s.logger.Debug("generated docs over mcp", "file", file, "rows", res.Total.Rows)

	return textResult(buf.String()), nil, nil
}

func (s *server) listEnvFiles(ctx context.Context, req *mcpsdk.CallToolRequest, args listArgs) (*mcpsdk.CallToolResult, any, error) {
	ws, err := workspace.Detect(resolveWorkdir(args.Workdir))
	if err != nil {
		return errorResult(err), nil, nil
	}
	cfg, err := config.Load(ws.Root)
	if err != nil {
		return errorResult(err), nil, nil
	}
	filter, err := scanner.NewFilter(ws.Root, cfg.Include, cfg.Exclude)
	if err != nil {
		return errorResult(err), nil, nil
	}

	files, err := workspace.ListEnvFiles(ws.Root, filter)
	if err != nil {
		return errorResult(err), nil, nil
	}
	rel := make([]string, 0, len(files))
	for _, f := range files {
		rel = append(rel, ws.Rel(f))
	}

	return jsonResult(envFileList{
		Root:   ws.Root,
		Marker: ws.Marker,
		Files:  rel,
		Count:  len(rel),
	}), nil, nil
}

func resolveWorkdir(dir string) string {
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
