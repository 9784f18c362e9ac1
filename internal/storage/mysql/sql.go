package mysql

const insertPropertySQL = `
INSERT INTO properties
  (name, kind, address, city, state, country, phone, email, timezone, currency, amenities)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updatePropertySQL = `
UPDATE properties SET
  name = ?, kind = ?, address = ?, city = ?, state = ?, country = ?,
  phone = ?, email = ?, timezone = ?, currency = ?, amenities = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

const getPropertySQL = `
SELECT id, name, kind, address, city, state, country, phone, email,
       timezone, currency, amenities, created_at, updated_at
FROM properties
WHERE id = ?
`

const insertRoomSQL = `
INSERT INTO rooms
  (property_id, number, floor, kind, status, rate, max_occupancy, amenities, notes)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateRoomSQL = `
UPDATE rooms SET
  property_id = ?, number = ?, floor = ?, kind = ?, status = ?,
  rate = ?, max_occupancy = ?, amenities = ?, notes = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

const getRoomSQL = `
SELECT id, property_id, number, floor, kind, status, rate, max_occupancy,
       amenities, notes, created_at, updated_at
FROM rooms
WHERE id = ?
`

const insertGuestSQL = `
INSERT INTO guests
  (first_name, last_name, email, phone, country, id_number, vip, preferences, notes)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateGuestSQL = `
UPDATE guests SET
  first_name = ?, last_name = ?, email = ?, phone = ?, country = ?,
  id_number = ?, vip = ?, preferences = ?, notes = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

const getGuestSQL = `
SELECT id, first_name, last_name, email, phone, country, id_number, vip,
       preferences, notes, created_at, updated_at
FROM guests
WHERE id = ?
`

const insertReservationSQL = `
INSERT INTO reservations
  (confirmation, property_id, room_id, guest_id, check_in, check_out,
   adults, children, status, total_amount, source, notes)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateReservationSQL = `
UPDATE reservations SET
  room_id = ?, check_in = ?, check_out = ?, adults = ?, children = ?,
  total_amount = ?, source = ?, notes = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

const getReservationSQL = `
SELECT id, confirmation, property_id, room_id, guest_id, check_in, check_out,
       adults, children, status, total_amount, source, notes, created_at, updated_at
FROM reservations
WHERE id = ?
`

// One row per confirmed arrival on the target date; the notifier branches
// on which contact fields are present.
const dueForCheckInSQL = `
SELECT r.id, r.confirmation,
       CONCAT(g.first_name, ' ', g.last_name),
       g.email, g.phone,
       p.name, rm.number, r.check_in
FROM reservations r
JOIN guests g      ON g.id  = r.guest_id
JOIN rooms rm      ON rm.id = r.room_id
JOIN properties p  ON p.id  = r.property_id
WHERE r.status = 'confirmed' AND r.check_in = ?
ORDER BY p.id, r.id
`

const insertStaffSQL = `
INSERT INTO staff
  (property_id, first_name, last_name, role, email, phone, active, schedule)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
`

const updateStaffSQL = `
UPDATE staff SET
  property_id = ?, first_name = ?, last_name = ?, role = ?, email = ?,
  phone = ?, active = ?, schedule = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

const getStaffSQL = `
SELECT id, property_id, first_name, last_name, role, email, phone, active,
       schedule, created_at, updated_at
FROM staff
WHERE id = ?
`

const insertUserSQL = `
INSERT INTO users
  (username, email, password_hash, role, property_id, active)
VALUES
  (?, ?, ?, ?, ?, ?)
`

const updateUserSQL = `
UPDATE users SET
  username = ?, email = ?, password_hash = ?, role = ?, property_id = ?, active = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

const getUserSQL = `
SELECT id, username, email, password_hash, role, property_id, active, created_at, updated_at
FROM users
WHERE id = ?
`

const getUserByUsernameSQL = `
SELECT id, username, email, password_hash, role, property_id, active, created_at, updated_at
FROM users
WHERE username = ?
`

const insertTransactionSQL = `
INSERT INTO transactions
  (property_id, reservation_id, kind, category, amount, currency, method, note, occurred_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getTransactionSQL = `
SELECT id, property_id, reservation_id, kind, category, amount, currency,
       method, note, occurred_at, created_at
FROM transactions
WHERE id = ?
`
