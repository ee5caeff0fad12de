package web

// RenderStyle returns the inline CSS of the page.
func RenderStyle() string {
	return `
*{box-sizing:border-box;}
body{font-family:system-ui,-apple-system,"Segoe UI",Roboto,Arial,sans-serif;margin:0;background:#fafafa;color:#111;}
a{color:inherit;text-decoration:none;}
.page{max-width:1280px;margin:0 auto;padding:32px 16px;min-height:100vh;}
.muted{color:#606060;}
.center{text-align:center;}
.hero{text-align:center;margin-bottom:32px;}
.hero h1{font-size:36px;margin:0 0 8px;}
.lead{font-size:18px;margin:0;}
.button{display:inline-block;margin-top:16px;padding:8px 18px;border:0;border-radius:6px;background:#111;color:#fff;font-weight:600;cursor:pointer;}
.button:hover{background:#333;}
.button.wide{display:block;text-align:center;}
.state{display:flex;align-items:center;justify-content:center;min-height:70vh;flex-direction:column;}
.spinner{width:32px;height:32px;border:3px solid #ddd;border-top-color:#111;border-radius:50%;animation:spin 1s linear infinite;margin-bottom:16px;}
@keyframes spin{to{transform:rotate(360deg);}}
.panel{width:100%;max-width:420px;background:#fff;border:1px solid #e5e5e5;border-radius:10px;padding:24px;}
.error-title{color:#c00;margin:0 0 12px;}
.empty{padding:48px 0;}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(260px,1fr));gap:24px;}
.card{display:block;background:#fff;border:1px solid #e5e5e5;border-radius:10px;overflow:hidden;transition:box-shadow .15s;}
.card:hover{box-shadow:0 6px 18px rgba(0,0,0,0.12);}
.thumb{position:relative;height:192px;background:#000;}
.thumb img{width:100%;height:100%;object-fit:cover;display:block;}
.thumb-placeholder{width:100%;height:100%;background:#ddd;}
.rank{position:absolute;top:8px;left:8px;background:rgba(0,0,0,0.8);color:#fff;padding:2px 8px;border-radius:4px;font-size:14px;font-weight:700;}
.watch{position:absolute;inset:0;display:flex;align-items:center;justify-content:center;color:#fff;font-weight:700;background:rgba(0,0,0,0.2);opacity:0;transition:opacity .15s;}
.card:hover .watch{opacity:1;}
.card-body{padding:16px;}
.title{font-size:14px;margin:0 0 8px;display:-webkit-box;-webkit-line-clamp:2;-webkit-box-orient:vertical;overflow:hidden;}
.channel{font-size:14px;margin:0 0 12px;}
.stats{display:flex;justify-content:space-between;gap:8px;font-size:12px;color:#606060;}
.published{font-size:12px;margin:8px 0 0;}
`
}
