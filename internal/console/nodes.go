package console

import (
	"context"
	"fmt"
	"time"

	"github.com/sker65/headsup/client"
)

func (a *App) loadNodes(ctx context.Context, params client.ListNodesParams) ([]client.Node, error) {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	res, err := a.API.ListNodes(callCtx, params)
	cancel()
	logElapsed("list nodes", start, err)
	if err != nil {
		return nil, a.fail(err, "Failed to load nodes")
	}
	if res == nil {
		return nil, nil
	}
	return res.Nodes, nil
}

// ListNodes renders the nodes matching params.
func (a *App) ListNodes(ctx context.Context, params client.ListNodesParams) error {
	nodes, err := a.loadNodes(ctx, params)
	if err != nil {
		return err
	}
	a.renderNodes(nodes)
	return nil
}

// DeleteNode asks for confirmation unless yes is set.
func (a *App) DeleteNode(ctx context.Context, id string, yes bool) error {
	ok, err := a.confirmed(yes, fmt.Sprintf("Delete node %s?", id))
	if err != nil || !ok {
		return err
	}
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	err = a.API.DeleteNode(callCtx, id)
	cancel()
	logElapsed("delete node", start, err)
	if err != nil {
		return a.fail(err, "Failed to delete node")
	}
	a.Notifier.Success("Node deleted")
	return nil
}

// ExpireNode expires a node now, or at expiry when it is non-zero.
func (a *App) ExpireNode(ctx context.Context, id string, expiry time.Time) error {
	var ts string
	if !expiry.IsZero() {
		ts = client.FormatTime(expiry)
	}
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	err := a.API.ExpireNode(callCtx, id, ts)
	cancel()
	logElapsed("expire node", start, err)
	if err != nil {
		return a.fail(err, "Failed to expire node")
	}
	a.Notifier.Success("Node expired")
	return nil
}

func (a *App) RenameNode(ctx context.Context, id, newName string) error {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	err := a.API.RenameNode(callCtx, id, newName)
	cancel()
	logElapsed("rename node", start, err)
	if err != nil {
		return a.fail(err, "Failed to rename node")
	}
	a.Notifier.Success("Node renamed")
	return nil
}

// CleanupNodes deletes offline nodes last seen more than olderThan ago,
// reports the tally and re-renders the node list.
func (a *App) CleanupNodes(ctx context.Context, olderThan time.Duration, yes bool) error {
	nodes, err := a.loadNodes(ctx, client.ListNodesParams{})
	if err != nil {
		return err
	}
	stale := client.StaleOfflineNodes(nodes, a.now(), olderThan)
	if len(stale) == 0 {
		a.Notifier.Info(fmt.Sprintf("No offline nodes last seen more than %s ago", olderThan))
		return nil
	}

	a.printf("Offline nodes last seen more than %s ago:\n", olderThan)
	a.renderNodes(stale)
	ok, err := a.confirmed(yes, fmt.Sprintf("Delete %d nodes?", len(stale)))
	if err != nil || !ok {
		return err
	}

	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	result := a.API.DeleteNodes(callCtx, client.NodeIDs(stale))
	cancel()
	logElapsed("cleanup nodes", start, nil)
	a.reportBatch("nodes", result)

	return a.ListNodes(ctx, client.ListNodesParams{})
}
