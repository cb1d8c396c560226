package pagination

import "fmt"

// Connection represents a Relay-compliant GraphQL connection built from a Page.
// It provides both edges (with cursors) and nodes (direct access) to support
// different query patterns.
//
// Type parameter T is the domain model type (e.g., User, Post, Organization).
//
// Example GraphQL schema:
//
//	type UserConnection {
//	  edges: [UserEdge!]!
//	  nodes: [User!]!
//	  pageInfo: PageInfo!
//	}
type Connection[T any] struct {
	// Edges contains the list of edges, each with a cursor and node.
	Edges []Edge[T] `json:"edges"`

	// Nodes provides direct access to the items without cursor overhead.
	Nodes []T `json:"nodes"`

	// PageInfo contains pagination metadata (hasNextPage, cursors, etc.)
	PageInfo PageInfo `json:"pageInfo"`
}

// Edge represents a Relay-compliant edge in a connection.
//
// Type parameter T is the domain model type.
type Edge[T any] struct {
	// Cursor is an opaque string that marks this item's position in the list.
	Cursor string `json:"cursor"`

	// Node is the actual data item.
	Node T `json:"node"`
}

// BuildConnection creates a Connection from the items of a page.
// PageInfo is derived from the page with NewPageInfo.
//
// Type parameters:
//   - From: Source type (e.g., SQLBoiler model, database row)
//   - To: Target type (e.g., domain model, GraphQL type)
//
// Parameters:
//   - page: The page whose items become the connection nodes
//   - cursorEncoder: Function that generates a cursor for each item
//   - transform: Function that converts From -> To (can return error)
//
// Example usage:
//
//	conn, err := pagination.BuildConnection(
//	    page,
//	    func(i int, item *models.User) string {
//	        return *pagination.EncodeOffsetCursor(page.Offset() + i + 1)
//	    },
//	    toDomainUser,
//	)
func BuildConnection[From any, To any](
	page Page[From],
	cursorEncoder func(index int, item From) string,
	transform func(From) (To, error),
) (*Connection[To], error) {
	conn := &Connection[To]{
		Nodes:    make([]To, 0, page.ItemCount()),
		Edges:    make([]Edge[To], 0, page.ItemCount()),
		PageInfo: NewPageInfo(page),
	}

	for i, item := range page.items {
		transformed, err := transform(item)
		if err != nil {
			return nil, fmt.Errorf("transform item at index %d: %w", i, err)
		}

		conn.Nodes = append(conn.Nodes, transformed)
		conn.Edges = append(conn.Edges, Edge[To]{
			Cursor: cursorEncoder(i, item),
			Node:   transformed,
		})
	}

	return conn, nil
}
