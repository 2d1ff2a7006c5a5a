package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/output"
)

// GetFileCmd prints a configuration file
type GetFileCmd struct {
	Path string `arg:"" help:"File path, e.g. /scalyr/alerts"`
	JSON bool   `help:"Print the raw server response"`
}

// Run executes the get-file command
func (c *GetFileCmd) Run(globals *Globals) error {
	ctx, stop := commandContext()
	defer stop()

	resp, err := execute(ctx, globals, config.ScopeReadConfig, api.EndpointGetFile, func(token string) any {
		return api.GetFileRequest{Token: token, Path: c.Path}
	})
	if err != nil {
		return err
	}
	if c.JSON {
		return output.WriteJSON(globals.Stdout, resp.Raw)
	}

	file := api.DecodeFile(resp)
	if !file.Exists {
		_, err := fmt.Fprintf(globals.Stdout, "File '%s' does not exist\n", c.Path)
		return err
	}
	globals.Debug("%s: version %d, created %s, modified %s", c.Path, file.Version,
		formatMillis(file.CreateDate), formatMillis(file.ModDate))
	_, err = io.WriteString(globals.Stdout, file.Content)
	return err
}

// PutFileCmd creates, replaces or deletes a configuration file
type PutFileCmd struct {
	Path   string `arg:"" help:"File path, e.g. /scalyr/alerts"`
	Delete bool   `help:"Delete the file instead of writing stdin to it"`
}

// Run executes the put-file command
func (c *PutFileCmd) Run(globals *Globals) error {
	var content *string
	if !c.Delete {
		if globals.Stdin == nil {
			return &CLIError{Code: CodeInput, Message: "no input: put-file reads the file content from stdin"}
		}
		data, err := io.ReadAll(globals.Stdin)
		if err != nil {
			return &CLIError{Code: CodeInput, Message: fmt.Sprintf("read stdin: %v", err), Err: err}
		}
		s := string(data)
		content = &s
	}

	ctx, stop := commandContext()
	defer stop()

	_, err := execute(ctx, globals, config.ScopeWriteConfig, api.EndpointPutFile, func(token string) any {
		return api.PutFileRequest{Token: token, Path: c.Path, Content: content, DeleteFile: c.Delete}
	})
	if err != nil {
		return err
	}
	if c.Delete {
		emitNotice(globals, fmt.Sprintf("Deleted %s", c.Path))
		return nil
	}
	emitNotice(globals, fmt.Sprintf("Wrote %s (%s)", c.Path, humanize.Bytes(uint64(len(*content)))))
	return nil
}

// ListFilesCmd lists configuration files
type ListFilesCmd struct {
	Output string `short:"o" default:"text" enum:"text,table,json,json-pretty" help:"Output style"`
}

// Run executes the list-files command
func (c *ListFilesCmd) Run(globals *Globals) error {
	ctx, stop := commandContext()
	defer stop()

	resp, err := execute(ctx, globals, config.ScopeReadConfig, api.EndpointListFiles, func(token string) any {
		return api.ListFilesRequest{Token: token}
	})
	if err != nil {
		return err
	}
	if done, err := writeRawJSON(globals, c.Output, resp); done {
		return err
	}

	paths := api.DecodeFileList(resp)
	if c.Output == outputTable {
		rows := make([][]string, 0, len(paths))
		for _, p := range paths {
			rows = append(rows, []string{p})
		}
		return output.WriteTable(globals.Stdout, []string{"Path"}, rows)
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(globals.Stdout, p); err != nil {
			return err
		}
	}
	return nil
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "unknown"
	}
	return time.UnixMilli(ms).Format(time.RFC3339)
}
