package mysql

const schemaSQL = `
CREATE TABLE IF NOT EXISTS canonical_hotels (
  id   VARCHAR(64)  NOT NULL PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  seq  BIGINT       NOT NULL AUTO_INCREMENT,
  UNIQUE KEY uq_seq (seq)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

// seq preserves dataset insertion order; the name-index tie-break depends
// on a stable load order.
const listCanonicalSQL = `
SELECT id, name
FROM canonical_hotels
ORDER BY seq
`

const insertCanonicalSQL = `
INSERT INTO canonical_hotels (id, name) VALUES (?, ?)
ON DUPLICATE KEY UPDATE name = VALUES(name)
`
