package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// startedLayout is the timestamp format the worklog API expects.
const startedLayout = "2006-01-02T15:04:05.000-0700"

// Issue represents a Jira issue.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

// IssueFields contains the issue field data the tool cares about.
type IssueFields struct {
	Summary string  `json:"summary"`
	Status  *Status `json:"status,omitempty"`
}

type Status struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

type searchResult struct {
	Total  int     `json:"total"`
	Issues []Issue `json:"issues"`
}

// adfComment builds the Atlassian document format body for a worklog comment.
func adfComment(text string) map[string]interface{} {
	return map[string]interface{}{
		"type":    "doc",
		"version": 1,
		"content": []map[string]interface{}{
			{
				"type": "paragraph",
				"content": []map[string]interface{}{
					{"type": "text", "text": text},
				},
			},
		},
	}
}

// AddWorklog submits one worklog item for the given issue.
func (c *Client) AddWorklog(ctx context.Context, issueKey, comment string, started time.Time, seconds int64) error {
	body, err := json.Marshal(map[string]interface{}{
		"timeSpentSeconds": seconds,
		"comment":          adfComment(comment),
		"started":          started.Format(startedLayout),
	})
	if err != nil {
		return fmt.Errorf("marshaling worklog: %w", err)
	}

	resp, err := c.do(ctx, "POST", fmt.Sprintf("/rest/api/3/issue/%s/worklog", url.PathEscape(issueKey)), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("adding worklog to %s: %w", issueKey, err)
	}
	resp.Body.Close()

	c.logger.Info().Str("issue", issueKey).Int64("seconds", seconds).Msg("worklog added")
	return nil
}

// ActiveIssues lists issues assigned to the current user that are not done.
func (c *Client) ActiveIssues(ctx context.Context) ([]Issue, error) {
	query := url.Values{}
	query.Set("jql", "assignee=currentuser() AND status!=done")

	resp, err := c.do(ctx, "GET", "/rest/api/3/search?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("searching active issues: %w", err)
	}

	var result searchResult
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Issues, nil
}
