package impl

import (
	"context"

	"github.com/sidereusnuntius/reelapp/internal/db"
	"github.com/sidereusnuntius/reelapp/internal/domain"
)

func (d *dbImpl) InsertReel(ctx context.Context, reel domain.Reel) error {
	_, err := d.db.ExecContext(ctx,
		"INSERT INTO reels(id, media_handle, uploader_id, uploader_username) VALUES (?, ?, ?, ?)",
		reel.ID, reel.MediaHandle, reel.UploaderID, reel.UploaderUsername)
	return d.HandleError(err)
}

func (d *dbImpl) GetReel(ctx context.Context, id string) (domain.Reel, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT id, media_handle, uploader_id, uploader_username FROM reels WHERE id = ?", id)

	var r domain.Reel
	err := row.Scan(&r.ID, &r.MediaHandle, &r.UploaderID, &r.UploaderUsername)
	if err != nil {
		return domain.Reel{}, d.HandleError(err)
	}
	return r, nil
}

func (d *dbImpl) DeleteReel(ctx context.Context, id string) error {
	res, err := d.db.ExecContext(ctx, "DELETE FROM reels WHERE id = ?", id)
	if err != nil {
		return d.HandleError(err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return d.HandleError(err)
	}
	if removed == 0 {
		return db.ErrNotFound
	}
	return nil
}

// The rowid records insertion order; newest uploads come back first.
func (d *dbImpl) ListReels(ctx context.Context) ([]domain.Reel, error) {
	return d.listReels(ctx,
		"SELECT id, media_handle, uploader_id, uploader_username FROM reels ORDER BY rowid DESC")
}

func (d *dbImpl) ListReelsByUploader(ctx context.Context, uploaderID int64) ([]domain.Reel, error) {
	return d.listReels(ctx,
		"SELECT id, media_handle, uploader_id, uploader_username FROM reels WHERE uploader_id = ? ORDER BY rowid DESC",
		uploaderID)
}

func (d *dbImpl) listReels(ctx context.Context, query string, args ...any) ([]domain.Reel, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	reels := []domain.Reel{}
	for rows.Next() {
		var r domain.Reel
		if err = rows.Scan(&r.ID, &r.MediaHandle, &r.UploaderID, &r.UploaderUsername); err != nil {
			return nil, d.HandleError(err)
		}
		reels = append(reels, r)
	}
	return reels, d.HandleError(rows.Err())
}
