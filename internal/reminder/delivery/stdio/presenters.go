package stdio

import (
	"bytes"
	"encoding/json"
	"time"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder"
)

const (
	creationDateLayout = "2006-01-02 15:04:05 -0700"
	timestampLayout    = "2006-01-02T15:04:05.000000"
	unknownListName    = "Unknown"
)

type errorResp struct {
	Error string `json:"error"`
}

type listResp struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type reminderResp struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	ListName     string  `json:"list_name"`
	Completed    bool    `json:"completed"`
	DueDate      *string `json:"due_date"`
	Priority     int     `json:"priority"`
	Notes        string  `json:"notes"`
	CreationDate *string `json:"creation_date"`
}

type listListsResp struct {
	Lists []listResp `json:"lists"`
}

type listRemindersResp struct {
	Reminders []reminderResp `json:"reminders"`
	Count     int            `json:"count"`
}

type createdResp struct {
	Created reminderResp `json:"created"`
}

type completedResp struct {
	Completed reminderResp `json:"completed"`
}

type updatedResp struct {
	Updated reminderResp `json:"updated"`
}

type snapshotResp struct {
	Reminders []reminderResp `json:"reminders"`
	ByList    byListResp     `json:"by_list"`
	Total     int            `json:"total"`
	Timestamp string         `json:"timestamp"`
}

// byListResp encodes as a JSON object whose keys keep group order.
type byListResp []reminder.ListGroup

func (b byListResp) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(listName(g.Name))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(toReminderResps(g.Reminders))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func listName(name string) string {
	if name == "" {
		return unknownListName
	}
	return name
}

func toReminderResp(r model.Reminder) reminderResp {
	resp := reminderResp{
		ID:        r.ID,
		Title:     r.Title,
		ListName:  listName(r.ListName),
		Completed: r.Completed,
		Priority:  r.Priority,
		Notes:     r.Notes,
	}
	if r.Due != nil {
		due := r.Due.String()
		resp.DueDate = &due
	}
	if r.CreationDate != nil {
		created := r.CreationDate.UTC().Format(creationDateLayout)
		resp.CreationDate = &created
	}
	return resp
}

func toReminderResps(items []model.Reminder) []reminderResp {
	out := make([]reminderResp, 0, len(items))
	for _, r := range items {
		out = append(out, toReminderResp(r))
	}
	return out
}

func newListListsResp(o reminder.ListListsOutput) listListsResp {
	lists := make([]listResp, 0, len(o.Lists))
	for _, l := range o.Lists {
		lists = append(lists, listResp{Name: l.Name, ID: l.ID})
	}
	return listListsResp{Lists: lists}
}

func newListRemindersResp(o reminder.ListRemindersOutput) listRemindersResp {
	return listRemindersResp{
		Reminders: toReminderResps(o.Reminders),
		Count:     len(o.Reminders),
	}
}

func newSnapshotResp(o reminder.SnapshotOutput) snapshotResp {
	return snapshotResp{
		Reminders: toReminderResps(o.Reminders),
		ByList:    byListResp(o.ByList),
		Total:     len(o.Reminders),
		Timestamp: o.Timestamp.In(time.Local).Format(timestampLayout),
	}
}
