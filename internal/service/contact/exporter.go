package contact

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"time"

	"contact_admin_server/internal/dao/mysql/repository"
	"contact_admin_server/internal/dto/request"
	"contact_admin_server/internal/model"
	"contact_admin_server/pkg/enum/contact/gender_enum"
)

// utf8BOM makes spreadsheet software decode the double-byte labels
// correctly when the file is opened by double-click.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// exportBatchSize bounds how many contacts are materialized at once
// while streaming.
const exportBatchSize = 200

// csvTimeLayout formats created_at in the exported rows.
const csvTimeLayout = "2006-01-02 15:04:05"

// Export is a prepared CSV export: filters validated and the pre-flight
// query already run, so WriteTo starts from a known-good state and a
// query failure never produces a half-written file that looks valid.
type Export struct {
	repos    *repository.Repositories
	filter   repository.ContactFilter
	total    int64
	filename string
}

// PrepareExport validates the export filters and runs the filtered
// count. Any error here surfaces before the response is committed.
func (s *contactService) PrepareExport(req request.ExportContactRequest) (*Export, error) {
	filter, err := s.buildFilter(req.Keyword, req.Gender, req.CategoryID, req.Date)
	if err != nil {
		return nil, err
	}

	total, err := s.repos.Contact.Count(filter)
	if err != nil {
		return nil, err
	}

	return &Export{
		repos:    s.repos,
		filter:   filter,
		total:    total,
		filename: "contacts_" + time.Now().Format("20060102_150405") + ".csv",
	}, nil
}

// Filename returns the download name, derived from the export
// wall-clock time, not from the data.
func (e *Export) Filename() string {
	return e.filename
}

// Total returns the filtered row count from the pre-flight query.
func (e *Export) Total() int64 {
	return e.total
}

// WriteTo streams the export: the UTF-8 BOM, then one CSV row per
// contact, newest first, flushed batch by batch so large result sets
// never materialize fully. A failure mid-stream aborts with an error
// and leaves the response truncated; there is no way to unsend the
// rows already written.
func (e *Export) WriteTo(w io.Writer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	err := e.repos.Contact.FindFilteredInBatches(e.filter, exportBatchSize, func(batch []model.Contact) error {
		for i := range batch {
			if err := cw.Write(exportRow(&batch[i])); err != nil {
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		return nil
	})
	if err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// exportRow renders one contact in the fixed column order: id, full
// name (last first), gender label, email, tel, address, building,
// category content, detail, created_at. Optional fields render as the
// empty string. Quoting is handled by encoding/csv.
func exportRow(c *model.Contact) []string {
	building := ""
	if c.Building != nil {
		building = *c.Building
	}

	return []string{
		strconv.FormatUint(uint64(c.ID), 10),
		c.LastName + " " + c.FirstName,
		gender_enum.Label(c.Gender),
		c.Email,
		c.Tel,
		c.Address,
		building,
		c.Category.Content,
		c.Detail,
		c.CreatedAt.Format(csvTimeLayout),
	}
}
