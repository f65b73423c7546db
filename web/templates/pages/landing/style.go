package landing

// stylesheet covers only what the page behaviour depends on: theme colours,
// smooth scrolling, the overlay and the body scroll lock.
const stylesheet = `
:root, [data-theme="light"] { --bg:#fbfaf7; --surface:#ffffff; --ink:#1b1d22; --muted:#5d6270; --border:#e4e2dc; --accent:#1f6f5c; }
[data-theme="dark"] { --bg:#111318; --surface:#1a1d24; --ink:#eef0f4; --muted:#a2a8b6; --border:#2a2e38; --accent:#57c7a6; }
html { scroll-behavior: smooth; }
body { margin:0; background:var(--bg); color:var(--ink); font-family:system-ui, sans-serif; }
body.scroll-locked { overflow:hidden; }
a { color:inherit; }
.container { max-width:1120px; margin:0 auto; padding:0 20px; }
.section { padding:72px 0; scroll-margin-top:72px; }
.nav { position:sticky; top:0; background:var(--surface); border-bottom:1px solid var(--border); z-index:10; }
.nav-inner { display:flex; align-items:center; justify-content:space-between; gap:16px; height:64px; }
.nav-links, .nav-right { display:flex; gap:14px; align-items:center; }
.btn { display:inline-block; padding:10px 16px; border-radius:999px; border:1px solid var(--border); text-decoration:none; }
.btn-primary { background:var(--accent); color:var(--bg); border-color:var(--accent); }
.theme-toggle { width:36px; height:20px; border-radius:999px; border:1px solid var(--border); background:var(--bg); cursor:pointer; }
.mobile-menu-btn { display:none; }
.mobile-overlay { display:none; position:fixed; inset:0; background:var(--bg); padding:20px; z-index:20; }
.mobile-overlay.open { display:flex; flex-direction:column; gap:24px; }
.mobile-overlay-links { display:flex; flex-direction:column; gap:16px; font-size:20px; }
.faq-item { border-bottom:1px solid var(--border); }
.faq-question { display:flex; justify-content:space-between; padding:16px 6px; text-decoration:none; font-weight:600; }
.faq-answer { padding:0 6px 16px; color:var(--muted); }
.card { border:1px solid var(--border); border-radius:16px; padding:16px; background:var(--surface); }
.pill { display:inline-block; border:1px solid var(--border); border-radius:999px; padding:6px 12px; margin:4px; }
.logo-long { height:40px; }
.logo-short { height:40px; display:none; }
.mobile-overlay .logo-short { display:block; }
.center { text-align:center; }
.muted { color:var(--muted); }
@media (max-width: 760px) {
  .nav-links, .hide-mobile, .nav .logo-long { display:none; }
  .nav .logo-short { display:block; }
  .mobile-menu-btn { display:inline-block; }
}
`
