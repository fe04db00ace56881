package inspect

// The catalog query texts below are the "out of scope" collaborator
// spec.md §1/§6 describes: opaque SQL strings the core treats as black
// boxes. They are included here so the inspector is runnable end to end,
// but they carry none of the engine's interesting logic - every column
// they must produce is dictated by the record shape spec.md §3 requires
// per kind, and QueryTexts exists precisely so a caller can swap them out
// without touching internal/inspect's mapping logic.
type QueryTexts struct {
	Table      string
	View       string
	Index      string
	Sequence   string
	Enum       string
	Function   string
	Trigger    string
	Dependency string
}

// DefaultQueries returns the catalog query texts this repository ships
// with, targeting a single PostgreSQL server's pg_catalog/information_schema.
func DefaultQueries() QueryTexts {
	return QueryTexts{
		Table:      tableQuery,
		View:       viewQuery,
		Index:      indexQuery,
		Sequence:   sequenceQuery,
		Enum:       enumQuery,
		Function:   functionQuery,
		Trigger:    triggerQuery,
		Dependency: dependencyQuery,
	}
}

const tableQuery = `
SELECT
  n.nspname || '.' || c.relname AS identity,
  n.nspname AS schema,
  c.relname AS name,
  (
    SELECT coalesce(json_agg(json_build_object(
             'name', a.attname,
             'type', format_type(a.atttypid, a.atttypmod),
             'default', pg_get_expr(ad.adbin, ad.adrelid),
             'not_null', a.attnotnull
           ) ORDER BY a.attnum), '[]')
    FROM pg_attribute a
    LEFT JOIN pg_attrdef ad ON ad.adrelid = a.attrelid AND ad.adnum = a.attnum
    WHERE a.attrelid = c.oid AND a.attnum > 0 AND NOT a.attisdropped
  ) AS columns_json,
  (
    SELECT coalesce(json_agg(json_build_object(
             'name', con.conname,
             'definition', pg_get_constraintdef(con.oid)
           ) ORDER BY con.conname), '[]')
    FROM pg_constraint con
    WHERE con.conrelid = c.oid
  ) AS constraints_json
FROM pg_class c
JOIN pg_namespace n ON n.oid = c.relnamespace
WHERE c.relkind = 'r'
`

const viewQuery = `
SELECT
  n.nspname || '.' || c.relname AS identity,
  n.nspname AS schema,
  c.relname AS name,
  pg_get_viewdef(c.oid, true) AS definition
FROM pg_class c
JOIN pg_namespace n ON n.oid = c.relnamespace
WHERE c.relkind = 'v'
`

const indexQuery = `
SELECT
  n.nspname || '.' || ic.relname AS identity,
  n.nspname AS schema,
  ic.relname AS name,
  pg_get_indexdef(i.indexrelid) AS definition,
  i.indisunique AS is_unique,
  i.indisprimary AS is_pk
FROM pg_index i
JOIN pg_class ic ON ic.oid = i.indexrelid
JOIN pg_namespace n ON n.oid = ic.relnamespace
`

const sequenceQuery = `
SELECT
  n.nspname || '.' || c.relname AS identity,
  n.nspname AS schema,
  c.relname AS name,
  s.seqtypid::regtype::text AS data_type,
  s.seqstart AS start_value,
  s.seqincrement AS increment,
  s.seqmin AS min_value,
  s.seqmax AS max_value,
  s.seqcycle AS cycle,
  ownt.relname AS owned_by_table,
  owna.attname AS owned_by_column
FROM pg_sequence s
JOIN pg_class c ON c.oid = s.seqrelid
JOIN pg_namespace n ON n.oid = c.relnamespace
LEFT JOIN pg_depend d ON d.objid = c.oid AND d.deptype = 'a'
LEFT JOIN pg_class ownt ON ownt.oid = d.refobjid
LEFT JOIN pg_attribute owna ON owna.attrelid = d.refobjid AND owna.attnum = d.refobjsubid
`

const enumQuery = `
SELECT
  n.nspname || '.' || t.typname AS identity,
  n.nspname AS schema,
  t.typname AS name,
  (
    SELECT json_agg(e.enumlabel ORDER BY e.enumsortorder)
    FROM pg_enum e
    WHERE e.enumtypid = t.oid
  ) AS elements_json
FROM pg_type t
JOIN pg_namespace n ON n.oid = t.typnamespace
WHERE t.typtype = 'e'
`

const functionQuery = `
SELECT
  n.nspname || '.' || p.proname || '(' || pg_get_function_identity_arguments(p.oid) || ')' AS identity,
  n.nspname AS schema,
  p.proname AS name,
  pg_get_functiondef(p.oid) AS definition
FROM pg_proc p
JOIN pg_namespace n ON n.oid = p.pronamespace
WHERE p.prokind = 'f'
`

const triggerQuery = `
SELECT
  n.nspname || '.' || c.relname || '.' || tg.tgname AS identity,
  n.nspname AS schema,
  tg.tgname AS name,
  n.nspname || '.' || c.relname AS table_name,
  pg_get_triggerdef(tg.oid) AS definition
FROM pg_trigger tg
JOIN pg_class c ON c.oid = tg.tgrelid
JOIN pg_namespace n ON n.oid = c.relnamespace
WHERE NOT tg.tgisinternal
`

const dependencyQuery = `
SELECT
  dependent.identity,
  prerequisite.identity AS dependency_identity
FROM pg_depend dep
JOIN pg_identify_object(dep.classid, dep.objid, dep.objsubid) dependent ON true
JOIN pg_identify_object(dep.refclassid, dep.refobjid, dep.refobjsubid) prerequisite ON true
WHERE dep.deptype IN ('n', 'a')
`
