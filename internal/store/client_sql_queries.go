package store

const (
	// master_keys holds at most one row; the CHECK(id = 1) constraint plus
	// this upsert keep it that way.
	saveMasterKey = `
		INSERT INTO master_keys (id, tenant_id, key_bytes, created_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			tenant_id = excluded.tenant_id,
			key_bytes = excluded.key_bytes,
			created_at = excluded.created_at;`

	getMasterKey = `
		SELECT tenant_id, key_bytes, created_at
		FROM master_keys
		WHERE id = 1;`

	deleteMasterKey = `DELETE FROM master_keys WHERE id = 1;`

	upsertCachedMessage = `
		INSERT INTO message_cache (message_id, conversation_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (message_id) DO UPDATE SET
			conversation_id = excluded.conversation_id,
			role = excluded.role,
			content = excluded.content,
			created_at = excluded.created_at;`

	getCachedMessage = `
		SELECT message_id, conversation_id, role, content, created_at
		FROM message_cache
		WHERE message_id = $1;`

	getCachedConversation = `
		SELECT message_id, conversation_id, role, content, created_at
		FROM message_cache
		WHERE conversation_id = $1
		ORDER BY created_at;`
)
