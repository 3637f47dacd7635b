package db

import (
	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/model"
)

func CreateLink(name, url string, category *string) (model.Link, error) {
	var l model.Link
	const q = `
	INSERT INTO links (name, url, category, created_at)
	VALUES ($1, $2, $3, now())
	RETURNING id, name, url, category, created_at;`
	if err := DB.Get(&l, q, name, url, category); err != nil {
		log.Error().Err(err).Msg("CreateLink failed")
		return model.Link{}, err
	}
	return l, nil
}

func GetLinkByID(id int) (model.Link, error) {
	var l model.Link
	err := DB.Get(&l, `SELECT id, name, url, category, created_at FROM links WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("link_id", id).Msg("GetLinkByID failed")
	}
	return l, err
}

func ListLinks() ([]model.Link, error) {
	var out []model.Link
	if err := DB.Select(&out, `SELECT id, name, url, category, created_at FROM links ORDER BY name;`); err != nil {
		log.Error().Err(err).Msg("ListLinks failed")
		return nil, err
	}
	return out, nil
}

func UpdateLink(id int, name, url, category *string) error {
	const q = `
	UPDATE links
	   SET name     = COALESCE($2, name),
	       url      = COALESCE($3, url),
	       category = COALESCE($4, category)
	 WHERE id = $1;`
	_, err := DB.Exec(q, id, name, url, category)
	if err != nil {
		log.Error().Err(err).Int("link_id", id).Msg("UpdateLink failed")
	}
	return err
}

func DeleteLink(id int) error {
	_, err := DB.Exec(`DELETE FROM links WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("link_id", id).Msg("DeleteLink failed")
	}
	return err
}
