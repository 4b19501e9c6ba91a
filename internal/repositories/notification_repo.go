package repositories

import (
	"database/sql"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

func (r NotificationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r NotificationRepository) ListByUser(userID int64) ([]models.Notification, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, COALESCE(role,''), title, body, seen, COALESCE(created_at,'')
		FROM notifications WHERE user_id=? ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Role, &n.Title, &n.Body, &n.Seen, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r NotificationRepository) Insert(q DBTX, n models.Notification) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO notifications (user_id, role, title, body, seen, created_at)
		VALUES (?, ?, ?, ?, 0, NOW())
	`, n.UserID, n.Role, n.Title, n.Body)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r NotificationRepository) MarkSeen(userID, id int64) error {
	res, err := r.db().Exec(`
		UPDATE notifications SET seen=1 WHERE id=? AND user_id=?
	`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "notification"}
	}
	return nil
}

func (r NotificationRepository) MarkAllSeen(userID int64) error {
	_, err := r.db().Exec(`UPDATE notifications SET seen=1 WHERE user_id=? AND seen=0`, userID)
	return err
}
