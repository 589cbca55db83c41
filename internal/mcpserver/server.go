// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the portfolio editor operations for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/avendel/folio/internal/persist"
	"github.com/avendel/folio/internal/store"
)

// Server wraps the MCP server with the editor tools.
type Server struct {
	mcp    *server.MCPServer
	store  *store.Store
	bridge *persist.Bridge
}

// New creates a new MCP server with all editor tools registered.
func New(st *store.Store, bridge *persist.Bridge) *Server {
	s := &Server{store: st, bridge: bridge}

	s.mcp = server.NewMCPServer(
		"Folio",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_portfolio",
		mcp.WithDescription("Read the full current portfolio snapshot as JSON."),
	), s.getPortfolio)

	s.mcp.AddTool(mcp.NewTool("update_personal_info",
		mcp.WithDescription("Replace one personal-info field. Known fields: name, title, bio, "+
			"location, email, github, linkedin, twitter, website, resumeUrl. Unknown fields are a no-op."),
		mcp.WithString("field", mcp.Required(), mcp.Description("Field name to replace")),
		mcp.WithString("value", mcp.Required(), mcp.Description("New value")),
	), s.updatePersonalInfo)

	s.mcp.AddTool(mcp.NewTool("add_item",
		mcp.WithDescription("Append a new entry with placeholder content to a collection and return its id."),
		mcp.WithString("collection", mcp.Required(), mcp.Description("One of: projects, experience, skills")),
	), s.addItem)

	s.mcp.AddTool(mcp.NewTool("update_item",
		mcp.WithDescription("Merge a partial update onto the entry with the given id. "+
			"patch is a JSON object of the fields to change; the technologies field is a "+
			"comma-separated string. Read the folio://data-format resource for the shapes. "+
			"Unknown ids are a no-op."),
		mcp.WithString("collection", mcp.Required(), mcp.Description("One of: projects, experience, skills")),
		mcp.WithString("id", mcp.Required(), mcp.Description("Entry id")),
		mcp.WithString("patch", mcp.Required(), mcp.Description("JSON object of fields to change")),
	), s.updateItem)

	s.mcp.AddTool(mcp.NewTool("delete_item",
		mcp.WithDescription("Remove the entry with the given id from a collection. Unknown ids are a no-op."),
		mcp.WithString("collection", mcp.Required(), mcp.Description("One of: projects, experience, skills")),
		mcp.WithString("id", mcp.Required(), mcp.Description("Entry id")),
	), s.deleteItem)

	s.mcp.AddTool(mcp.NewTool("get_data_format",
		mcp.WithDescription("Returns the portfolio data shapes and editing rules. "+
			"Call this before patching entries to get the field names right."),
	), s.getDataFormat)

	s.mcp.AddTool(mcp.NewTool("save_portfolio",
		mcp.WithDescription("Serialize the current snapshot and persist it: writes through the local "+
			"save server when it is running, otherwise copies the serialized text to the clipboard."),
	), s.savePortfolio)

	// Resource: data file format contract.
	s.mcp.AddResource(
		mcp.NewResource("folio://data-format", "Portfolio Data Format",
			mcp.WithResourceDescription("Shape of the portfolio data file and the editable fields."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readDataFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) getPortfolio(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(s.store.Snapshot(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) updatePersonalInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field, err := req.RequireString("field")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !s.store.UpdatePersonalInfo(field, value) {
		return mcp.NewToolResultText(fmt.Sprintf("unknown field %q, nothing changed", field)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("updated %s", field)), nil
}

func (s *Server) addItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collection, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var id string
	switch collection {
	case "projects":
		id = s.store.AddProject()
	case "experience":
		id = s.store.AddExperience()
	case "skills":
		id = s.store.AddSkill()
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown collection %q", collection)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created %s entry %s", collection, id)), nil
}

func (s *Server) updateItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collection, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	patchJSON, err := req.RequireString("patch")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch collection {
	case "projects":
		var patch store.ProjectPatch
		if err := json.Unmarshal([]byte(patchJSON), &patch); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid patch: %v", err)), nil
		}
		s.store.UpdateProject(id, patch)
	case "experience":
		var patch store.ExperiencePatch
		if err := json.Unmarshal([]byte(patchJSON), &patch); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid patch: %v", err)), nil
		}
		s.store.UpdateExperience(id, patch)
	case "skills":
		var patch store.SkillPatch
		if err := json.Unmarshal([]byte(patchJSON), &patch); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid patch: %v", err)), nil
		}
		s.store.UpdateSkill(id, patch)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown collection %q", collection)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("patched %s entry %s", collection, id)), nil
}

func (s *Server) deleteItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collection, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch collection {
	case "projects":
		s.store.DeleteProject(id)
	case "experience":
		s.store.DeleteExperience(id)
	case "skills":
		s.store.DeleteSkill(id)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown collection %q", collection)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted %s entry %s", collection, id)), nil
}

func (s *Server) savePortfolio(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.bridge.Save(ctx, s.store.Snapshot())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("save failed: %v", err)), nil
	}
	switch res {
	case persist.SavedToFile:
		return mcp.NewToolResultText("saved to data file"), nil
	default:
		return mcp.NewToolResultText("save server unreachable; serialized data copied to clipboard"), nil
	}
}

func (s *Server) getDataFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(DataFormatContract), nil
}

func (s *Server) readDataFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "folio://data-format",
			MIMEType: "text/markdown",
			Text:     DataFormatContract,
		},
	}, nil
}
